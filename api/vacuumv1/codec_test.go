package vacuumv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestCodecRegistered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, CodecName, c.Name())
}

func TestCodecPlainMessage(t *testing.T) {
	var c Codec
	data, err := c.Marshal(&ListResponse{
		Candidates:    []*Candidate{{Id: "a.finder", Name: "Finder", Selected: true}},
		SelectedCount: 1,
	})
	require.NoError(t, err)

	var out ListResponse
	require.NoError(t, c.Unmarshal(data, &out))
	require.Len(t, out.GetCandidates(), 1)
	assert.Equal(t, "Finder", out.GetCandidates()[0].GetName())
	assert.Equal(t, int32(1), out.GetSelectedCount())
}

func TestCodecProtoMessage(t *testing.T) {
	var c Codec
	data, err := c.Marshal(wrapperspb.String("pong"))
	require.NoError(t, err)
	assert.Equal(t, `"pong"`, string(data))

	out := new(wrapperspb.StringValue)
	require.NoError(t, c.Unmarshal(data, out))
	assert.Equal(t, "pong", out.GetValue())
}
