package svggen

import (
	"bytes"
	"fmt"
	"strings"

	svg "github.com/ajstarks/svgo"

	"image2svg/simplify"
	i2stypes "image2svg/type"
)

// Options 序列化样式参数，只影响输出，不触发重新描摹
type Options struct {
	Simplification float64 // 路径化简容差，0 表示不化简
	StrokeEnabled  bool
	StrokeColor    string
	StrokeWidth    float64
}

// GenerateSVG 把描摹结果序列化为 SVG 文档字符串
// 形状按面积降序逐个输出；孔洞靠 fill-rule:evenodd 从外轮廓中扣掉
// 没有可画内容时返回只含 viewBox 的空文档，永不报错
func GenerateSVG(data *i2stypes.TracedData, opt Options) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(data.Width, data.Height, 0, 0, data.Width, data.Height)

	for _, shape := range data.Shapes {
		d := pathData(shape.Contours, opt.Simplification)
		if d == "" {
			continue
		}
		canvas.Path(d, shapeStyle(shape.Color, opt))
	}

	canvas.End()
	return buf.String()
}

// pathData 把一个形状的全部轮廓拼成单条路径数据
// 每条轮廓一个 M，后接一条 L 坐标链，显式 Z 闭合；坐标保留两位小数
func pathData(contours []i2stypes.Path, epsilon float64) string {
	var b strings.Builder
	for _, c := range contours {
		s := simplify.Simplify(c, epsilon)
		if len(s) < 2 {
			// 化简后退化的轮廓直接跳过
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "M%s %s L", coord(s[0].X), coord(s[0].Y))
		for i := 1; i < len(s); i++ {
			if i > 1 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s %s", coord(s[i].X), coord(s[i].Y))
		}
		b.WriteString(" Z")
	}
	return b.String()
}

func coord(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	// 去掉多余的小数零，输出更紧凑
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

func shapeStyle(c i2stypes.Color, opt Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "fill:#%02x%02x%02x;fill-opacity:%s;fill-rule:evenodd", c.R, c.G, c.B, opacity(c.A))
	if opt.StrokeEnabled {
		color := opt.StrokeColor
		if color == "" {
			color = "#000000"
		}
		fmt.Fprintf(&b, ";stroke:%s;stroke-width:%s", color, coord(opt.StrokeWidth))
	} else {
		b.WriteString(";stroke:none")
	}
	return b.String()
}

func opacity(a int) string {
	if a >= 255 {
		return "1"
	}
	if a <= 0 {
		return "0"
	}
	return strings.TrimRight(fmt.Sprintf("%.3f", float64(a)/255), "0")
}
