package tracer

import (
	i2stypes "image2svg/type"
)

// dirs Moore 邻域的 8 个方向，按屏幕坐标系顺时针排列（y 轴向下）
var dirs = [8][2]int{
	{1, 0},   // 东
	{1, 1},   // 东南
	{0, 1},   // 南
	{-1, 1},  // 西南
	{-1, 0},  // 西
	{-1, -1}, // 西北
	{0, -1},  // 北
	{1, -1},  // 东北
}

// TraceMask 从二值掩码提取所有闭合轮廓（外轮廓和孔洞）
// Moore 邻域边界跟踪：逐行扫描找未访问的边界像素，沿边界走一圈
// 走完的轮廓把沿途像素标记为已访问，避免同一条边界被重复描摹
// 点数 <=2 的退化轮廓直接丢弃
func TraceMask(m *i2stypes.Mask) []i2stypes.Path {
	w, h := m.Width, m.Height
	visited := make([]bool, w*h)
	var paths []i2stypes.Path

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !m.Opaque(x, y) || visited[y*w+x] {
				continue
			}
			// 只有边界像素才作为起点：四邻域里有透明像素（越界视为透明）
			t := transparentSide(m, x, y)
			if t < 0 {
				continue
			}

			path := walkBoundary(m, x, y, t)
			if len(path) <= 2 {
				continue
			}
			for _, p := range path {
				visited[int(p.Y)*w+int(p.X)] = true
			}
			paths = append(paths, path)
		}
	}
	return paths
}

// transparentSide 返回第一个透明正交邻居的方向索引，没有则返回 -1
func transparentSide(m *i2stypes.Mask, x, y int) int {
	for _, d := range [4]int{0, 2, 4, 6} {
		if !m.Opaque(x+dirs[d][0], y+dirs[d][1]) {
			return d
		}
	}
	return -1
}

// walkBoundary 从 (sx,sy) 出发沿边界走到回到起点或走入死角
// 每步从上次前进方向的回溯侧开始顺序扫描 8 个邻居，取第一个不透明者；
// 起点以透明邻居所在方向 t 伪造进入方向，保证第一步就贴着边界走
func walkBoundary(m *i2stypes.Mask, sx, sy, t int) i2stypes.Path {
	path := i2stypes.Path{{X: float64(sx), Y: float64(sy)}}
	cx, cy := sx, sy
	dir := (t + 2) % 8

	// 防御病态输入的步数上限
	maxSteps := m.Width*m.Height*4 + 8
	for step := 0; step < maxSteps; step++ {
		next := -1
		for i := 0; i < 8; i++ {
			d := (dir + 6 + i) % 8
			if m.Opaque(cx+dirs[d][0], cy+dirs[d][1]) {
				next = d
				break
			}
		}
		if next < 0 {
			// 孤立像素或死胡同
			break
		}
		cx += dirs[next][0]
		cy += dirs[next][1]
		dir = next
		if cx == sx && cy == sy {
			break
		}
		path = append(path, i2stypes.Point{X: float64(cx), Y: float64(cy)})
	}
	return path
}
