package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/rustyoz/svg"

	"image2svg/colorquant"
	"image2svg/imgsource"
	"image2svg/svggen"
	"image2svg/svgjson"
	"image2svg/tracer"
	i2stypes "image2svg/type"
	"image2svg/videoframes"
)

type pipelineOptions struct {
	MaxWidth       int
	Step           int
	MinPixels      int
	DenoiseRadius  int
	Simplification float64
	StrokeEnabled  bool
	StrokeColor    string
	StrokeWidth    float64
	Engine         string
	JSONExport     bool
	MaxFileSize    int
	Parallel       int
}

func (o pipelineOptions) traceOptions() tracer.Options {
	return tracer.Options{
		Quant: colorquant.Options{
			Step:      o.Step,
			MinPixels: o.MinPixels,
		},
		DenoiseRadius: o.DenoiseRadius,
	}
}

func (o pipelineOptions) svgOptions() svggen.Options {
	return svggen.Options{
		Simplification: o.Simplification,
		StrokeEnabled:  o.StrokeEnabled,
		StrokeColor:    o.StrokeColor,
		StrokeWidth:    o.StrokeWidth,
	}
}

// generateSvgToFile 单图模式：读取、描摹、生成 SVG 并写盘
func generateSvgToFile(ctx context.Context, input, outputPath string, opts pipelineOptions) {
	log.Println("Loading image...")
	buf, err := imgsource.Load(ctx, input, opts.MaxWidth)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Engine == "potrace" {
		generatePotraceToFiles(buf, outputPath, opts)
		return
	}

	log.Println("Tracing image...")
	data, err := tracer.TraceImageWith(buf, opts.traceOptions())
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Traced %d shapes\n", len(data.Shapes))

	svgStr := svggen.GenerateSVG(data, opts.svgOptions())
	if err := writeFile(outputPath+".svg", svgStr); err != nil {
		log.Fatal(err)
	}
	log.Println("Wrote " + outputPath + ".svg")

	if opts.JSONExport {
		if err := exportJSON(svgStr, outputPath+".json"); err != nil {
			log.Fatal(err)
		}
		log.Println("Wrote " + outputPath + ".json")
	}
}

// generatePotraceToFiles potrace 引擎：每个颜色掩码单独输出一份 SVG
func generatePotraceToFiles(buf *i2stypes.PixelBuffer, outputPath string, opts pipelineOptions) {
	log.Println("Tracing masks with potrace engine...")
	svgs, colors, err := tracer.TraceMasksPotrace(buf, opts.traceOptions())
	if err != nil {
		log.Fatal(err)
	}
	for i, s := range svgs {
		name := fmt.Sprintf("%s_c%02d.svg", outputPath, i)
		if err := writeFile(name, s); err != nil {
			log.Fatal(err)
		}
		c := colors[i].Color
		log.Printf("Wrote %s (#%02x%02x%02x, %d px)\n", name, c.R, c.G, c.B, colors[i].Count)
	}
}

// generateVideoSvgToFile 视频模式：抽帧后逐帧描摹，每帧一份 SVG
func generateVideoSvgToFile(ctx context.Context, videoPath string, fps int, outputPath string, opts pipelineOptions) {
	log.Println("Extracting frames from video...")
	maxWidth := opts.MaxWidth
	if maxWidth <= 0 {
		maxWidth = 96
	}
	frames, err := videoframes.ExtractFrames(ctx, videoPath, fps, maxWidth)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Extracted %d frames\n", len(frames))

	svgs := traceAllFrames(frames, opts)

	written := 0
	for i, s := range svgs {
		if s == "" {
			// 空帧（全透明或无轮廓）跳过
			continue
		}
		if err := writeFile(fmt.Sprintf("%s_%04d.svg", outputPath, i), s); err != nil {
			log.Fatal(err)
		}
		written++
	}
	log.Printf("Wrote %d frame SVGs\n", written)

	if opts.JSONExport {
		if err := exportVideoJSON(svgs, outputPath, opts.MaxFileSize); err != nil {
			log.Fatal(err)
		}
	}
}

// traceAllFrames 并行描摹所有帧，协程数由 Parallel 限制
func traceAllFrames(frames []i2stypes.Frame, opts pipelineOptions) []string {
	results := make([]string, len(frames))
	sem := make(chan struct{}, max(opts.Parallel, 1))

	var wg sync.WaitGroup
	for i, f := range frames {
		wg.Add(1)
		go func(idx int, frame i2stypes.Frame) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			buf := i2stypes.FromImage(frame.Image)
			data, err := tracer.TraceImageWith(buf, opts.traceOptions())
			if err != nil {
				// 单帧描不出内容不算失败
				return
			}
			results[idx] = svggen.GenerateSVG(data, opts.svgOptions())
		}(i, f)
	}
	wg.Wait()

	return results
}

// exportJSON 解析生成的 SVG 并导出 JSON 路径数据
// 尺寸从 viewBox 取，和 SVG 文档保持一致
func exportJSON(svgStr, path string) error {
	doc := svgjson.Parse(svgStr)
	if w, h, err := parseViewBox(svgStr); err == nil {
		doc.Width, doc.Height = w, h
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, string(data))
}

// exportVideoJSON 把所有帧的路径数据写成若干 JSON 行文件
// 单文件超过 maxFileSize 时滚动到下一个文件
func exportVideoJSON(svgs []string, outputPath string, maxFileSize int) error {
	docs := svgjson.ParseAll(svgs)

	fileId := 0
	currentFileSize := 0
	var currentFile *os.File
	for _, doc := range docs {
		if len(doc.Paths) == 0 {
			continue
		}
		line, err := svgjson.Encode(doc)
		if err != nil {
			return err
		}
		lineSize := len(line) + 1 // +1 for newline
		if currentFile == nil || currentFileSize+lineSize > maxFileSize {
			if currentFile != nil {
				currentFile.Close()
			}
			currentFile, err = createFile(outputPath + "_" + strconv.Itoa(fileId) + ".json")
			if err != nil {
				return err
			}
			fileId++
			currentFileSize = 0
		}
		if _, err := currentFile.WriteString(line + "\n"); err != nil {
			return err
		}
		currentFileSize += lineSize
	}
	if currentFile != nil {
		currentFile.Close()
	}
	return nil
}

// parseViewBox 从 SVG 文档解析 viewBox 的宽高
func parseViewBox(svgStr string) (int, int, error) {
	parsed, err := svg.ParseSvg(svgStr, "trace", 1.0)
	if err != nil {
		return 0, 0, err
	}
	split := strings.Split(parsed.ViewBox, " ")
	if len(split) != 4 {
		return 0, 0, fmt.Errorf("unexpected viewBox %q", parsed.ViewBox)
	}
	w, err := strconv.Atoi(split[2])
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.Atoi(split[3])
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func writeFile(path, content string) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(content)
	return err
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}
