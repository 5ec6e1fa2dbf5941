package progress_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/hoist/internal/adapters/progress"
)

func TestNew(t *testing.T) {
	recorder := progress.New()
	assert.NotNil(t, recorder)

	vertex := recorder.Begin("fsevents@2.3.3")
	assert.NotNil(t, vertex)
	vertex.Done(nil)

	assert.NoError(t, recorder.Close())
}

func TestNoop(t *testing.T) {
	recorder := progress.NewNoop()
	recorder.Begin("a@1.0.0").Done(errors.New("boom"))
	assert.NoError(t, recorder.Close())
}
