package storage

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	now := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)

	name := ObjectName("Photo.JPG", now)
	assert.Regexp(t, regexp.MustCompile(`^media/2025/03/[0-9a-f-]{36}\.jpg$`), name)
	assert.NotEqual(t, name, ObjectName("Photo.JPG", now))

	assert.Regexp(t, regexp.MustCompile(`^media/2025/03/[0-9a-f-]{36}$`), ObjectName("README", now))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", ContentType("logo.PNG"))
	assert.Equal(t, defaultContentType, ContentType("blob"))
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "http://localhost:9000/media", publicURL(Config{Endpoint: "localhost:9000", Bucket: "media"}))
	assert.Equal(t, "https://s3.local/media", publicURL(Config{Endpoint: "s3.local", Bucket: "media", UseSSL: true}))
	assert.Equal(t, "https://cdn.clinic.test", publicURL(Config{PublicURL: "https://cdn.clinic.test/"}))
}

func TestMinIO_URLAndKey(t *testing.T) {
	m := &MinIO{publicURL: "https://cdn.clinic.test"}

	url := m.URL("media/2025/03/a.png")
	assert.Equal(t, "https://cdn.clinic.test/media/2025/03/a.png", url)

	key, ok := m.Key(url)
	assert.True(t, ok)
	assert.Equal(t, "media/2025/03/a.png", key)

	_, ok = m.Key("https://elsewhere.test/a.png")
	assert.False(t, ok)
	_, ok = m.Key("https://cdn.clinic.test/")
	assert.False(t, ok)
}
