package dmrerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/methylgraph/dmrcore/dmrerr"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"Invalid", dmrerr.NewInvalid("bad row"), dmrerr.ErrInvalid},
		{"MissingCover", dmrerr.NewMissingCover("t0"), dmrerr.ErrMissingCover},
		{"DegenerateCover", dmrerr.NewDegenerateCover(3), dmrerr.ErrDegenerateCover},
		{"IdOverflow", dmrerr.NewIdOverflow("t1"), dmrerr.ErrIdOverflow},
		{"BipartitionViolation", dmrerr.NewBipartitionViolation(1, 2), dmrerr.ErrBipartitionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, errors.Is(tc.err, tc.want))
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}

func TestPersistenceWrapsCauseAndAvoidsDoubleWrap(t *testing.T) {
	cause := errors.New("disk full")
	p1 := dmrerr.NewPersistence(cause)
	assert.True(t, errors.Is(p1, dmrerr.ErrPersistence))
	assert.True(t, errors.Is(p1, cause))

	p2 := dmrerr.NewPersistence(p1)
	assert.Same(t, p1, p2)
}

func TestComponentIdAndTimepointRoundTripViaErrorsAs(t *testing.T) {
	err := error(dmrerr.NewDegenerateCover(42))
	var dc *dmrerr.DegenerateCover
	require_ := errors.As(err, &dc)
	assert.True(t, require_)
	assert.Equal(t, 42, dc.ComponentID)

	err2 := error(dmrerr.NewIdOverflow("t9"))
	var io *dmrerr.IdOverflow
	assert.True(t, errors.As(err2, &io))
	assert.Equal(t, "t9", io.Timepoint)
}
