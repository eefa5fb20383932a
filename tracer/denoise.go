package tracer

import (
	i2stypes "image2svg/type"
)

// Denoise 对掩码做半径 radius 的可分离均值滤波后重新二值化
// 用于描摹前抹平量化噪声造成的毛边和细缝；radius < 1 时原样返回
// 始终在私有副本上操作，不会改写调用方的掩码
func Denoise(m *i2stypes.Mask, radius int) *i2stypes.Mask {
	if radius < 1 {
		return m
	}

	w, h := m.Width, m.Height
	window := 2*radius + 1
	tmp := make([]int, w*h)

	// 水平方向：与 ±radius 的同行邻居取均值，越界索引钳制到边缘
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			sum := 0
			for dx := -radius; dx <= radius; dx++ {
				nx := x + dx
				if nx < 0 {
					nx = 0
				} else if nx >= w {
					nx = w - 1
				}
				sum += int(m.Alpha[row+nx])
			}
			tmp[row+x] = sum / window
		}
	}

	// 垂直方向，在水平结果上再过一遍
	out := i2stypes.NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0
			for dy := -radius; dy <= radius; dy++ {
				ny := y + dy
				if ny < 0 {
					ny = 0
				} else if ny >= h {
					ny = h - 1
				}
				sum += tmp[ny*w+x]
			}
			// 重新二值化
			if sum/window >= 128 {
				out.Alpha[y*w+x] = 255
			}
		}
	}
	return out
}
