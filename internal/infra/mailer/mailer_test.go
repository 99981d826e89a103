package mailer

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessagePlain(t *testing.T) {
	msg := string(buildMessage("bot@art.ru", "mgr@art.ru", "Новая заявка", "Текст заявки", nil))

	assert.Contains(t, msg, "From: bot@art.ru\r\n")
	assert.Contains(t, msg, "To: mgr@art.ru\r\n")
	assert.Contains(t, msg, "Subject: =?UTF-8?")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8")
	assert.NotContains(t, msg, "multipart")

	encoded := base64.StdEncoding.EncodeToString([]byte("Текст заявки"))
	assert.Contains(t, msg, encoded)
}

func TestBuildMessageWithAttachments(t *testing.T) {
	files := []File{{Name: "plan.pdf", Data: []byte("pdfdata")}}
	msg := string(buildMessage("bot@art.ru", "mgr@art.ru", "Заявка", "Тело", files))

	require.Contains(t, msg, "Content-Type: multipart/mixed; boundary=")
	assert.Contains(t, msg, `attachment; filename=`)
	assert.Contains(t, msg, base64.StdEncoding.EncodeToString([]byte("pdfdata")))

	// Границы в заголовке и в теле совпадают.
	i := strings.Index(msg, "boundary=\"")
	require.GreaterOrEqual(t, i, 0)
	rest := msg[i+len("boundary=\""):]
	boundary := rest[:strings.Index(rest, "\"")]
	assert.Contains(t, msg, "--"+boundary)
}

func TestMailerDisabledWithoutHost(t *testing.T) {
	m := New(Config{}, nil)
	assert.False(t, m.Enabled())

	m = New(Config{Host: "smtp.art.ru", From: "bot@art.ru"}, nil)
	assert.True(t, m.Enabled())
}
