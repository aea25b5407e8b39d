package rerank_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/okian/laneboard/internal/domain/model"
	"github.com/okian/laneboard/internal/domain/rerank"
	. "github.com/smartystreets/goconvey/convey"
)

// board builds a dense test board: per-lane client counts expand into
// clients with ids assigned sequentially lane by lane.
func board(backlog, inProgress, complete int) []model.Client {
	var out []model.Client
	id := 1
	add := func(lane model.Lane, n int) {
		for rank := 1; rank <= n; rank++ {
			out = append(out, model.Client{
				ID:       id,
				Name:     "client",
				Lane:     lane,
				Priority: rank,
			})
			id++
		}
	}
	add(model.LaneBacklog, backlog)
	add(model.LaneInProgress, inProgress)
	add(model.LaneComplete, complete)
	return out
}

func ranksIn(items []model.Client, lane model.Lane) []int {
	var ranks []int
	for _, c := range items {
		if c.Lane == lane {
			ranks = append(ranks, c.Priority)
		}
	}
	sort.Ints(ranks)
	return ranks
}

func isDense(items []model.Client) bool {
	for _, lane := range model.Lanes() {
		for i, r := range ranksIn(items, lane) {
			if r != i+1 {
				return false
			}
		}
	}
	return true
}

func find(items []model.Client, id int) model.Client {
	for _, c := range items {
		if c.ID == id {
			return c
		}
	}
	return model.Client{}
}

func lanePtr(l model.Lane) *model.Lane { return &l }
func intPtr(n int) *int                { return &n }

func TestMove_SameLane(t *testing.T) {
	Convey("Given a backlog of five clients ranked 1..5", t, func() {
		items := board(5, 0, 0)

		Convey("When the client at rank 4 moves to rank 1", func() {
			next, err := rerank.Move(items, 4, nil, intPtr(1))
			So(err, ShouldBeNil)

			Convey("Then clients at ranks 1,2,3 become 2,3,4", func() {
				So(find(next, 1).Priority, ShouldEqual, 2)
				So(find(next, 2).Priority, ShouldEqual, 3)
				So(find(next, 3).Priority, ShouldEqual, 4)
			})

			Convey("And the moved client takes rank 1", func() {
				So(find(next, 4).Priority, ShouldEqual, 1)
				So(find(next, 4).Lane, ShouldEqual, model.LaneBacklog)
			})

			Convey("And the client at rank 5 is untouched", func() {
				So(find(next, 5).Priority, ShouldEqual, 5)
			})

			Convey("And the lane stays dense", func() {
				So(isDense(next), ShouldBeTrue)
			})
		})

		Convey("When the client at rank 2 moves down to rank 4", func() {
			next, err := rerank.Move(items, 2, nil, intPtr(4))
			So(err, ShouldBeNil)

			Convey("Then clients at ranks 3 and 4 slide up", func() {
				So(find(next, 3).Priority, ShouldEqual, 2)
				So(find(next, 4).Priority, ShouldEqual, 3)
			})

			Convey("And the moved client takes rank 4", func() {
				So(find(next, 2).Priority, ShouldEqual, 4)
			})

			Convey("And ranks 1 and 5 are untouched", func() {
				So(find(next, 1).Priority, ShouldEqual, 1)
				So(find(next, 5).Priority, ShouldEqual, 5)
			})
		})

		Convey("When a move reverses a previous move", func() {
			moved, err := rerank.Move(items, 4, nil, intPtr(1))
			So(err, ShouldBeNil)
			restored, err := rerank.Move(moved, 4, nil, intPtr(4))
			So(err, ShouldBeNil)

			Convey("Then every client is back at its original rank", func() {
				So(restored, ShouldResemble, items)
			})
		})
	})
}

func TestMove_CrossLane(t *testing.T) {
	Convey("Given five backlog clients and three in progress", t, func() {
		items := board(5, 3, 0)

		Convey("When backlog rank 2 moves to in-progress with no priority", func() {
			next, err := rerank.Move(items, 2, lanePtr(model.LaneInProgress), nil)
			So(err, ShouldBeNil)

			Convey("Then it lands at the bottom of in-progress", func() {
				So(find(next, 2).Lane, ShouldEqual, model.LaneInProgress)
				So(find(next, 2).Priority, ShouldEqual, 4)
			})

			Convey("And backlog ranks 3,4,5 shift down to 2,3,4", func() {
				So(find(next, 3).Priority, ShouldEqual, 2)
				So(find(next, 4).Priority, ShouldEqual, 3)
				So(find(next, 5).Priority, ShouldEqual, 4)
			})

			Convey("And in-progress incumbents keep their ranks", func() {
				So(find(next, 6).Priority, ShouldEqual, 1)
				So(find(next, 7).Priority, ShouldEqual, 2)
				So(find(next, 8).Priority, ShouldEqual, 3)
			})

			Convey("And both lanes stay dense", func() {
				So(isDense(next), ShouldBeTrue)
			})
		})

		Convey("When backlog rank 1 moves to in-progress rank 2", func() {
			next, err := rerank.Move(items, 1, lanePtr(model.LaneInProgress), intPtr(2))
			So(err, ShouldBeNil)

			Convey("Then it opens a slot and the incumbents below shift", func() {
				So(find(next, 1).Priority, ShouldEqual, 2)
				So(find(next, 6).Priority, ShouldEqual, 1)
				So(find(next, 7).Priority, ShouldEqual, 3)
				So(find(next, 8).Priority, ShouldEqual, 4)
			})

			Convey("And the vacated backlog gap closes", func() {
				So(ranksIn(next, model.LaneBacklog), ShouldResemble, []int{1, 2, 3, 4})
			})
		})

		Convey("When a requested priority exceeds the lane size", func() {
			next, err := rerank.Move(items, 2, lanePtr(model.LaneInProgress), intPtr(99))
			So(err, ShouldBeNil)

			Convey("Then it clamps to the bottom of the lane", func() {
				So(find(next, 2).Priority, ShouldEqual, 4)
				So(isDense(next), ShouldBeTrue)
			})
		})

		Convey("When a client moves into an empty lane", func() {
			next, err := rerank.Move(items, 2, lanePtr(model.LaneComplete), nil)
			So(err, ShouldBeNil)

			Convey("Then it takes rank 1 there", func() {
				So(find(next, 2).Lane, ShouldEqual, model.LaneComplete)
				So(find(next, 2).Priority, ShouldEqual, 1)
				So(isDense(next), ShouldBeTrue)
			})
		})
	})
}

func TestMove_NoOp(t *testing.T) {
	Convey("Given a mixed board", t, func() {
		items := board(4, 3, 2)

		Convey("When a client is moved to its current lane and rank", func() {
			next, err := rerank.Move(items, 6, lanePtr(model.LaneInProgress), intPtr(2))
			So(err, ShouldBeNil)

			Convey("Then no rank of any client changes", func() {
				So(next, ShouldResemble, items)
			})
		})

		Convey("When a same-lane move carries no priority", func() {
			next, err := rerank.Move(items, 3, nil, nil)
			So(err, ShouldBeNil)

			Convey("Then the board is returned unchanged", func() {
				So(next, ShouldResemble, items)
			})
		})

		Convey("When the same lane is requested explicitly with no priority", func() {
			next, err := rerank.Move(items, 3, lanePtr(model.LaneBacklog), nil)
			So(err, ShouldBeNil)
			So(next, ShouldResemble, items)
		})
	})
}

func TestMove_Properties(t *testing.T) {
	Convey("Given a populated board", t, func() {
		items := board(5, 4, 3)

		Convey("When every client is walked through every lane and rank", func() {
			state := items
			for _, c := range items {
				for _, lane := range model.Lanes() {
					for rank := 1; rank <= len(items); rank++ {
						next, err := rerank.Move(state, c.ID, lanePtr(lane), intPtr(rank))
						So(err, ShouldBeNil)
						state = next

						So(isDense(state), ShouldBeTrue)
						So(len(state), ShouldEqual, len(items))
					}
				}
			}
		})

		Convey("When a move succeeds", func() {
			next, err := rerank.Move(items, 7, lanePtr(model.LaneComplete), intPtr(1))
			So(err, ShouldBeNil)

			Convey("Then the input snapshot is not mutated", func() {
				So(items, ShouldResemble, board(5, 4, 3))
			})

			Convey("And only the two touched lanes change membership", func() {
				So(len(ranksIn(next, model.LaneBacklog)), ShouldEqual, 5)
				So(len(ranksIn(next, model.LaneInProgress)), ShouldEqual, 3)
				So(len(ranksIn(next, model.LaneComplete)), ShouldEqual, 4)
			})

			Convey("And fields other than lane and priority are preserved", func() {
				So(find(next, 7).Name, ShouldEqual, find(items, 7).Name)
				So(find(next, 7).ID, ShouldEqual, 7)
			})
		})
	})
}

func TestMove_UnknownClient(t *testing.T) {
	Convey("Given a board without client 42", t, func() {
		items := board(2, 1, 0)

		Convey("When a move targets the missing id", func() {
			next, err := rerank.Move(items, 42, nil, intPtr(1))

			Convey("Then the engine reports a contract violation", func() {
				So(next, ShouldBeNil)
				So(errors.Is(err, rerank.ErrUnknownClient), ShouldBeTrue)
			})
		})
	})
}
