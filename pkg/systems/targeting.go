package systems

import (
	"math"

	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/utils"
)

// coneAngleEpsilon 锥形边界上的浮点容差（弧度）
const coneAngleEpsilon = 1e-9

// FindNearestInCone 在锥形区域内查找最近的敌人（法杖主目标）
//
// 锥形以 origin 为顶点，朝向 aimAt，总角度 coneAngleDeg（半角为其一半），
// 最大距离 maxDistance。瞄准方向退化（aimAt == origin）或敌人与 origin 重合时
// 无法确定方向，视为不在锥形内。
//
// 实体按 ID 升序遍历，距离相同时保留 ID 较小者。
//
// 返回:
//   - ecs.EntityID: 最近的敌人
//   - bool: 是否找到
func FindNearestInCone(em *ecs.EntityManager, origin, aimAt utils.Vec2, maxDistance, coneAngleDeg float64) (ecs.EntityID, bool) {
	aimDir, ok := aimAt.Sub(origin).Normalize()
	if !ok {
		return 0, false
	}
	halfAngle := coneAngleDeg * math.Pi / 180 / 2

	var best ecs.EntityID
	bestDist := math.Inf(1)
	found := false

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		offset := pos.Vec().Sub(origin)
		dist := offset.Length()
		if dist > maxDistance {
			continue
		}
		dir, ok := offset.Normalize()
		if !ok {
			continue
		}
		angle := math.Acos(utils.Clamp(aimDir.Dot(dir), -1, 1))
		if angle > halfAngle+coneAngleEpsilon {
			continue
		}
		if dist < bestDist {
			best, bestDist, found = id, dist, true
		}
	}
	return best, found
}

// FindNearestInRadius 在圆形区域内查找最近的敌人（弧跳跃目标）
//
// exclude 指定的实体不参与搜索（刚被命中的敌人），传 0 表示不排除。
// 距离恰好等于 radius 的敌人视为在范围内。
//
// 返回:
//   - ecs.EntityID: 最近的敌人
//   - utils.Vec2: 该敌人的位置
//   - bool: 是否找到
func FindNearestInRadius(em *ecs.EntityManager, origin utils.Vec2, radius float64, exclude ecs.EntityID) (ecs.EntityID, utils.Vec2, bool) {
	var best ecs.EntityID
	var bestPos utils.Vec2
	bestDistSq := math.Inf(1)
	found := false
	radiusSq := radius * radius

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		if id == exclude {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		d := pos.Vec().Sub(origin)
		distSq := d.Dot(d)
		if distSq > radiusSq {
			continue
		}
		if distSq < bestDistSq {
			best, bestPos, bestDistSq, found = id, pos.Vec(), distSq, true
		}
	}
	return best, bestPos, found
}
