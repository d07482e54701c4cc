package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Geoffrey1014/svf-front-end-sub000/diag"
)

type fakePos string

func (p fakePos) String() string { return string(p) }

func TestSinkErrorfAccumulatesMessages(t *testing.T) {
	var sink diag.Sink
	sink.Errorf(fakePos("file.c:3:1"), "unexpected token %q", "}")
	sink.Errorf(fakePos("file.c:9:1"), "unresolved symbol %s", "foo")

	assert.Len(t, sink.Messages, 2)
	assert.Equal(t, `file.c:3:1: unexpected token "}"`, sink.Messages[0])
	assert.Equal(t, "file.c:9:1: unresolved symbol foo", sink.Messages[1])
}

func TestSinkStartsEmpty(t *testing.T) {
	var sink diag.Sink
	assert.Empty(t, sink.Messages)
}

func TestPanicfPanics(t *testing.T) {
	assert.PanicsWithValue(t, "file.c:1:1: invariant violated", func() {
		diag.Panicf(fakePos("file.c:1:1"), "invariant violated")
	})
}
