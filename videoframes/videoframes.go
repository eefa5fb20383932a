package videoframes

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png" // ffmpeg 管道输出 PNG 帧
	"io"
	"os"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	i2stypes "image2svg/type"
)

// ExtractFrames 用 ffmpeg 按 fps 抽帧并缩放到 maxWidth，解码为 image.Image
func ExtractFrames(ctx context.Context, videoPath string, fps, maxWidth int) ([]i2stypes.Frame, error) {
	if fps <= 0 {
		fps = 1
	}

	r, w := io.Pipe()

	cmd := ffmpeg.Input(videoPath).
		Output("pipe:1", ffmpeg.KwArgs{
			"format": "image2pipe",
			"vcodec": "png",
			"r":      strconv.Itoa(fps),
			"vf":     fmt.Sprintf("scale=%d:-1", maxWidth),
		}).
		WithOutput(w).
		WithErrorOutput(os.Stderr)
	cmd.Context = ctx

	// 边写边读，写端结束时带上 ffmpeg 的错误
	go func() {
		w.CloseWithError(cmd.Run())
	}()

	var frames []i2stypes.Frame
	reader := bufio.NewReader(r)
	index := 0

	for {
		img, _, err := image.Decode(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode frame %d failed: %w", index, err)
		}
		frames = append(frames, i2stypes.Frame{Index: index, Image: img})
		index++
	}

	if len(frames) == 0 {
		return nil, errors.New("no frames extracted")
	}

	return frames, nil
}
