package imgsource

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"

	// 注册可解码的图片格式
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"

	i2stypes "image2svg/type"
)

// Load 从本地路径或 http(s) URL 读取图片并转为像素缓冲
// maxWidth > 0 且图片更宽时按比例缩小到该宽度
func Load(ctx context.Context, ref string, maxWidth int) (*i2stypes.PixelBuffer, error) {
	r, err := open(ctx, ref)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s failed: %w", ref, err)
	}

	if maxWidth > 0 {
		img = scaleDown(img, maxWidth)
	}
	return i2stypes.FromImage(img), nil
}

func open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s failed: %w", ref, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s failed: status %s", ref, resp.Status)
		}
		return resp.Body, nil
	}
	return os.Open(ref)
}

// scaleDown 等比缩小到 maxWidth，高度自适应
func scaleDown(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxWidth {
		return img
	}
	nh := h * maxWidth / w
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
