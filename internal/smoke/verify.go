package smoke

import (
	"fmt"
	"sort"

	"github.com/okian/laneboard/internal/domain/model"
)

// VerifyDense checks that every lane's priorities form exactly 1..count,
// with no gaps or duplicates.
func VerifyDense(board []model.Client) error {
	byLane := make(map[model.Lane][]int)
	for _, c := range board {
		byLane[c.Lane] = append(byLane[c.Lane], c.Priority)
	}
	for lane, ranks := range byLane {
		sort.Ints(ranks)
		for i, r := range ranks {
			if r != i+1 {
				return fmt.Errorf("lane %s: expected rank %d at position %d, found %d", lane, i+1, i, r)
			}
		}
	}
	return nil
}
