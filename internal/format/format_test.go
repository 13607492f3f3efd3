package format

import (
	"bytes"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileSize(t *testing.T) {
	require.Equal(t, "0 байт", FileSize(0))
	require.Equal(t, "512 байт", FileSize(512))
	require.Equal(t, "1.0 КБ", FileSize(1024))
	require.Equal(t, "1.5 КБ", FileSize(1536))
	require.Equal(t, "1.0 МБ", FileSize(1024*1024))
	require.Equal(t, "2.0 ГБ", FileSize(2*1024*1024*1024))
}

func TestDate(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 15, 4, 0, 0, time.UTC)
	require.Equal(t, "07.03.2024", Date(ts))
	require.Equal(t, "07.03.2024 15:04", DateTime(ts))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, time.March, 7, 12, 0, 0, 0, time.UTC)

	require.Equal(t, "только что", RelativeTime(now.Add(-30*time.Second), now))
	require.Equal(t, "1 минуту назад", RelativeTime(now.Add(-1*time.Minute), now))
	require.Equal(t, "2 минуты назад", RelativeTime(now.Add(-2*time.Minute), now))
	require.Equal(t, "5 минут назад", RelativeTime(now.Add(-5*time.Minute), now))
	require.Equal(t, "11 минут назад", RelativeTime(now.Add(-11*time.Minute), now))
	require.Equal(t, "3 часа назад", RelativeTime(now.Add(-3*time.Hour), now))
	require.Equal(t, "2 дня назад", RelativeTime(now.Add(-48*time.Hour), now))
	require.Equal(t, "28.02.2024", RelativeTime(now.Add(-8*24*time.Hour), now))
}

func TestDecodeBase64RoundTrip(t *testing.T) {
	sizes := []int{0, 1, 511, 512, 513, 10000}
	for _, n := range sizes {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i % 251)
		}
		encoded := base64.StdEncoding.EncodeToString(data)

		decoded, mime, err := DecodeBase64(encoded)
		require.NoError(t, err, "size %d", n)
		require.Empty(t, mime)
		if n == 0 {
			require.Empty(t, decoded)
		} else {
			require.True(t, bytes.Equal(data, decoded), "size %d", n)
		}
		require.Equal(t, encoded, base64.StdEncoding.EncodeToString(decoded))
	}
}

func TestDecodeBase64DataURL(t *testing.T) {
	payload := []byte("hello world")
	url := EncodeDataURL(payload, "application/msword")

	decoded, mime, err := DecodeBase64(url)
	require.NoError(t, err)
	require.Equal(t, "application/msword", mime)
	require.Equal(t, payload, decoded)
}

func TestDecodeBase64Invalid(t *testing.T) {
	_, _, err := DecodeBase64("data:application/msword;base64")
	require.Error(t, err)

	_, _, err = DecodeBase64("data:application/msword;base64,%%%not-base64%%%")
	require.Error(t, err)
}

func TestHasBinaryMarker(t *testing.T) {
	require.True(t, HasBinaryMarker("data:application/msword;base64,AAAA"))
	require.True(t, HasBinaryMarker("base64,AAAA"))
	require.False(t, HasBinaryMarker("просто текст документа"))
}

func TestDetectType(t *testing.T) {
	require.Equal(t, TypeDOCX, DetectType("Техническое задание.docx"))
	require.Equal(t, TypeDOCX, DetectType("report.DOCX"))
	require.Equal(t, TypeDOC, DetectType("План работ.doc"))
	require.Equal(t, TypePDF, DetectType("scan.pdf"))
	require.Equal(t, TypeUnknown, DetectType("archive.zip"))
	require.Equal(t, TypeUnknown, DetectType("noextension"))
}

func TestDocTypeMIME(t *testing.T) {
	require.Equal(t,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		TypeDOCX.MIME())
	require.Equal(t, "application/msword", TypeDOC.MIME())
	require.Equal(t, "application/octet-stream", TypeUnknown.MIME())
}
