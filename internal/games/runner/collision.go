package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Collide tests the actor's hit region against every active obstacle's hit
// region. Returns the index of the first obstacle hit.
//
// Only the inset hit regions matter: sprites whose full bounds touch without
// their hit regions overlapping do not collide.
func Collide(actorHit core.Box, obstacles []Obstacle) (int, bool) {
	for i := range obstacles {
		if actorHit.Intersects(obstacles[i].HitBox()) {
			return i, true
		}
	}
	return -1, false
}
