package main

import (
	"context"
	"flag"
)

func main() {

	input := flag.String("input", "", "图片文件路径或 URL")
	video := flag.String("video", "", "视频文件路径（视频模式）")
	output := flag.String("output", "output/trace", "输出文件路径前缀")
	maxWidth := flag.Int("width", 0, "最大宽度，0 表示不缩放")
	fps := flag.Int("fps", 10, "视频模式下每秒帧数")
	step := flag.Int("step", 32, "颜色量化步长")
	minPixels := flag.Int("minpixels", 10, "颜色桶保留的最小像素数")
	denoise := flag.Int("denoise", 0, "描摹前的去噪半径")
	simplification := flag.Float64("simplify", 1, "路径简化容差")
	stroke := flag.Bool("stroke", false, "是否描边")
	strokeColor := flag.String("strokecolor", "#000000", "描边颜色")
	strokeWidth := flag.Float64("strokewidth", 1, "描边宽度")
	engine := flag.String("engine", "moore", "描摹引擎：moore 或 potrace")
	jsonOut := flag.Bool("json", false, "同时导出 JSON 路径数据")
	maxFileSize := flag.Int("maxsize", 2*1024*1024, "视频模式单个 JSON 输出文件最大尺寸，单位字节")
	parallel := flag.Int("parallel", 4, "视频模式并行处理的最大协程数")

	help := flag.Bool("help", false, "显示帮助信息")
	flag.Parse()
	if *help {
		flag.Usage()
		return
	}
	if *input == "" && *video == "" {
		flag.Usage()
		return
	}

	ctx := context.Background()

	opts := pipelineOptions{
		MaxWidth:       *maxWidth,
		Step:           *step,
		MinPixels:      *minPixels,
		DenoiseRadius:  *denoise,
		Simplification: *simplification,
		StrokeEnabled:  *stroke,
		StrokeColor:    *strokeColor,
		StrokeWidth:    *strokeWidth,
		Engine:         *engine,
		JSONExport:     *jsonOut,
		MaxFileSize:    *maxFileSize,
		Parallel:       *parallel,
	}

	if *video != "" {
		generateVideoSvgToFile(ctx, *video, *fps, *output, opts)
	} else {
		generateSvgToFile(ctx, *input, *output, opts)
	}
}
