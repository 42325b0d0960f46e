package game

// Material values; a king is worth strictly more than a man
const (
	ManValue  = 1
	KingValue = 2
)

// PieceValue returns the material value of p
func PieceValue(p Piece) int {
	if p.Strength == King {
		return KingValue
	}
	return ManValue
}

// EvaluateMaterial sums the value of team's pieces minus the opponent's
func EvaluateMaterial(b *Board, team Team) int {
	score := 0
	for _, sq := range b.cells {
		if sq.State != Occupied {
			continue
		}
		if sq.Occupant.Team == team {
			score += PieceValue(sq.Occupant)
		} else {
			score -= PieceValue(sq.Occupant)
		}
	}
	return score
}

// EvaluateAdvancement adds a small bonus for men close to promotion on top of
// material. Material is scaled so that a man outweighs the advancement of any
// single man.
func EvaluateAdvancement(b *Board, team Team) int {
	scale := b.height
	score := 0
	for i, sq := range b.cells {
		if sq.State != Occupied {
			continue
		}
		value := PieceValue(sq.Occupant) * scale * 2
		if sq.Occupant.Strength == Man {
			// rows already travelled
			value += b.height - 1 - abs(b.PromotionRow(sq.Occupant.Team)-i/b.width)
		}
		if sq.Occupant.Team == team {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

// Score is the material balance from Black's point of view
func Score(b *Board) int {
	return EvaluateMaterial(b, Black)
}
