package procdir

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSystemEvents(t *testing.T) {
	out := []byte("101\tcom.apple.finder\tFinder\tfalse\n" +
		"102\tcom.apple.notificationcenterui\tNotification Center\ttrue\n" +
		"103\tmissing value\tHelper\tfalse\n" +
		"garbage line\n")

	infos := parseSystemEvents(out)
	require.Len(t, infos, 3)
	assert.Equal(t, ProcessInfo{ID: "com.apple.finder", Name: "Finder", Icon: "com.apple.finder", Regular: true, PIDs: []int{101}}, infos[0])
	assert.False(t, infos[1].Regular)
	assert.True(t, strings.HasPrefix(infos[2].ID, "anon-"))
}
