package simplify

import (
	i2stypes "image2svg/type"
)

// Simplify 用 Ramer–Douglas–Peucker 算法在 epsilon 容差内化简轮廓
// 少于 3 个点的轮廓原样返回；epsilon 为 0 时只会丢弃严格共线的点
// 用显式区间栈代替递归，超长轮廓不会压爆调用栈
func Simplify(path i2stypes.Path, epsilon float64) i2stypes.Path {
	if len(path) < 3 {
		return path
	}
	if epsilon < 0 {
		epsilon = 0
	}
	epsSq := epsilon * epsilon

	keep := make([]bool, len(path))
	keep[0] = true
	keep[len(path)-1] = true

	type span struct{ start, end int }
	stack := []span{{0, len(path) - 1}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.end-s.start < 2 {
			continue
		}

		// 找离首尾连线最远的中间点
		maxSq := -1.0
		maxIdx := -1
		a, b := path[s.start], path[s.end]
		for i := s.start + 1; i < s.end; i++ {
			d := segmentDistSq(path[i], a, b)
			if d > maxSq {
				maxSq = d
				maxIdx = i
			}
		}

		if maxSq > epsSq {
			keep[maxIdx] = true
			stack = append(stack, span{s.start, maxIdx}, span{maxIdx, s.end})
		}
	}

	out := make(i2stypes.Path, 0, len(path))
	for i, p := range path {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// segmentDistSq 点到线段 ab 的平方距离，垂足落在线段外时取到端点的距离
func segmentDistSq(p, a, b i2stypes.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		ex := p.X - a.X
		ey := p.Y - a.Y
		return ex*ex + ey*ey
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	ex := a.X + t*dx - p.X
	ey := a.Y + t*dy - p.Y
	return ex*ex + ey*ey
}
