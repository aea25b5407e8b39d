package validate_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/okian/laneboard/internal/domain/model"
	"github.com/okian/laneboard/internal/domain/validate"
	. "github.com/smartystreets/goconvey/convey"
)

type mockLookup struct {
	ids map[int]bool
	err error
}

func (m *mockLookup) Exists(_ context.Context, id int) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.ids[id], nil
}

func num(s string) *json.Number {
	n := json.Number(s)
	return &n
}

func TestClientID(t *testing.T) {
	Convey("Given a store that knows clients 1 and 7", t, func() {
		store := &mockLookup{ids: map[int]bool{1: true, 7: true}}
		ctx := context.Background()

		Convey("When the raw id parses and exists", func() {
			id, err := validate.ClientID(ctx, store, "7")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, 7)
		})

		Convey("When the raw id is not an integer", func() {
			_, err := validate.ClientID(ctx, store, "seven")
			So(errors.Is(err, validate.ErrInvalidID), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "not an integer")
		})

		Convey("When the id is an integer but unknown", func() {
			_, err := validate.ClientID(ctx, store, "404")
			So(errors.Is(err, validate.ErrIDNotFound), ShouldBeTrue)
			So(errors.Is(err, validate.ErrInvalidID), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "no client")
		})

		Convey("When the store lookup fails", func() {
			broken := &mockLookup{err: errors.New("disk on fire")}
			_, err := validate.ClientID(ctx, broken, "1")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, validate.ErrInvalidID), ShouldBeFalse)
		})
	})
}

func TestPriority(t *testing.T) {
	Convey("Given optional priority inputs", t, func() {
		Convey("Absence is valid and stays absent", func() {
			p, err := validate.Priority(nil)
			So(err, ShouldBeNil)
			So(p, ShouldBeNil)
		})

		Convey("A positive integer passes through", func() {
			p, err := validate.Priority(num("3"))
			So(err, ShouldBeNil)
			So(*p, ShouldEqual, 3)
		})

		Convey("Zero is rejected", func() {
			_, err := validate.Priority(num("0"))
			So(errors.Is(err, validate.ErrInvalidPriority), ShouldBeTrue)
		})

		Convey("Negatives are rejected", func() {
			_, err := validate.Priority(num("-2"))
			So(errors.Is(err, validate.ErrInvalidPriority), ShouldBeTrue)
		})

		Convey("Fractions are rejected", func() {
			_, err := validate.Priority(num("2.5"))
			So(errors.Is(err, validate.ErrInvalidPriority), ShouldBeTrue)
		})
	})
}

func TestLaneName(t *testing.T) {
	Convey("Given optional lane inputs", t, func() {
		Convey("Absence is valid and stays absent", func() {
			lane, err := validate.LaneName(nil)
			So(err, ShouldBeNil)
			So(lane, ShouldBeNil)
		})

		Convey("Each recognized lane parses", func() {
			for _, want := range model.Lanes() {
				raw := string(want)
				lane, err := validate.LaneName(&raw)
				So(err, ShouldBeNil)
				So(*lane, ShouldEqual, want)
			}
		})

		Convey("Anything else is rejected", func() {
			raw := "done"
			_, err := validate.LaneName(&raw)
			So(errors.Is(err, validate.ErrInvalidLane), ShouldBeTrue)
		})
	})
}
