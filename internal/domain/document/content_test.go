package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeWireContentNone(t *testing.T) {
	for _, wire := range []string{"", "demo"} {
		content, err := DecodeWireContent(wire)
		require.NoError(t, err)
		require.Equal(t, KindNone, content.Kind)
		require.True(t, content.IsZero())
	}
}

func TestDecodeWireContentText(t *testing.T) {
	content, err := DecodeWireContent("просто отредактированный текст")
	require.NoError(t, err)
	require.Equal(t, KindText, content.Kind)
	require.Equal(t, "просто отредактированный текст", content.Text)
}

func TestDecodeWireContentDataURL(t *testing.T) {
	content, err := DecodeWireContent("data:application/msword;base64,aGVsbG8=")
	require.NoError(t, err)
	require.Equal(t, KindBinary, content.Kind)
	require.Equal(t, []byte("hello"), content.Data)
	require.Equal(t, "application/msword", content.MIME)
}

func TestDecodeWireContentBareBase64Marker(t *testing.T) {
	content, err := DecodeWireContent("base64,aGVsbG8=")
	require.NoError(t, err)
	require.Equal(t, KindBinary, content.Kind)
	require.Equal(t, []byte("hello"), content.Data)
}

func TestDecodeWireContentBadPayloadDegrades(t *testing.T) {
	content, err := DecodeWireContent("data:application/msword;base64,###")
	require.ErrorIs(t, err, ErrBadContent)
	require.Equal(t, KindBinary, content.Kind)
	require.Nil(t, content.Data)
	require.Equal(t, "application/msword", content.MIME)
}

func TestEncodeWireRoundTrip(t *testing.T) {
	binary := BinaryContent([]byte("payload"), "application/msword")
	decoded, err := DecodeWireContent(binary.EncodeWire())
	require.NoError(t, err)
	require.Equal(t, binary, decoded)

	text := TextContent("текст")
	decoded, err = DecodeWireContent(text.EncodeWire())
	require.NoError(t, err)
	require.Equal(t, text, decoded)

	require.Empty(t, Content{Kind: KindNone}.EncodeWire())
}

func TestDocumentCloneIsolatesContentBytes(t *testing.T) {
	doc := Document{ID: "1", Content: BinaryContent([]byte("payload"), "application/msword")}
	clone := doc.Clone()
	clone.Content.Data[0] = 'X'
	require.Equal(t, []byte("payload"), doc.Content.Data)
}

func TestContentByteSize(t *testing.T) {
	require.EqualValues(t, 7, BinaryContent([]byte("payload"), "").ByteSize())
	require.EqualValues(t, len("текст"), TextContent("текст").ByteSize())
	require.Zero(t, Content{}.ByteSize())
}
