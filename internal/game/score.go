package game

// winThreshold is the minimum points (exclusive) counted as a win.
const winThreshold = 80

const (
	ScoreWon  = "You Won!"
	ScoreLost = "AWW... You Lost!"
)

// ScoreRound grades a guess against the true target. Points shrink
// linearly with distance (100 at a perfect hit, 0 at distance >= 100) and
// the verdict string is what clients display.
func ScoreRound(guess, target int) (distance int, score string) {
	distance = guess - target
	if distance < 0 {
		distance = -distance
	}
	points := 100 - distance
	if points < 0 {
		points = 0
	}
	if points > winThreshold {
		return distance, ScoreWon
	}
	return distance, ScoreLost
}
