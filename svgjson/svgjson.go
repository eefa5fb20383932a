package svgjson

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"sync"
)

// PathRecord 单条路径的导出记录
type PathRecord struct {
	Color    string `json:"color"`
	PathData string `json:"pathdata"`
}

// Document 一份 SVG 文档的导出结果
type Document struct {
	Index  int          `json:"index"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Paths  []PathRecord `json:"paths"`
}

// Parse 从 SVG 字符串提取所有 path 的填充色与路径数据
func Parse(svgStr string) Document {
	type xmlPath struct {
		D     string `xml:"d,attr"`
		Style string `xml:"style,attr"`
		Fill  string `xml:"fill,attr"`
	}
	type xmlSVG struct {
		Width  int       `xml:"width,attr"`
		Height int       `xml:"height,attr"`
		Paths  []xmlPath `xml:"path"`
	}

	var s xmlSVG
	if err := xml.Unmarshal([]byte(svgStr), &s); err != nil {
		return Document{}
	}

	doc := Document{Width: s.Width, Height: s.Height}
	for _, p := range s.Paths {
		fill := p.Fill
		if fill == "" {
			fill = styleValue(p.Style, "fill")
		}
		doc.Paths = append(doc.Paths, PathRecord{Color: fill, PathData: p.D})
	}
	return doc
}

// ParseJSON 解析并编码为缩进 JSON
func ParseJSON(svgStr string) ([]byte, error) {
	return json.MarshalIndent(Parse(svgStr), "", "  ")
}

// Encode 把单份导出结果编码为单行 JSON
func Encode(doc Document) (string, error) {
	b, err := json.Marshal(doc)
	return string(b), err
}

// ParseAll 并行解析多份 SVG，结果顺序与输入一致
func ParseAll(svgs []string) []Document {
	results := make([]Document, len(svgs))

	var wg sync.WaitGroup
	for i, s := range svgs {
		wg.Add(1)
		go func(idx int, svgStr string) {
			defer wg.Done()
			doc := Parse(svgStr)
			doc.Index = idx
			results[idx] = doc
		}(i, s)
	}
	wg.Wait()

	return results
}

// styleValue 从内联 style 属性里取指定键的值
func styleValue(style, key string) string {
	for _, part := range strings.Split(style, ";") {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) == 2 && strings.TrimSpace(kv[0]) == key {
			return strings.TrimSpace(kv[1])
		}
	}
	return ""
}
