package mailer

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"careerflow/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func TestNew_SelectsImplementation(t *testing.T) {
	assert.IsType(t, &LogMailer{}, New(&config.Config{}))
	assert.IsType(t, &SMTPMailer{}, New(&config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587}))
}

func TestSMTPMailer_BuildMessage(t *testing.T) {
	m := NewSMTPMailer(&config.Config{
		SMTPHost: "smtp.example.com",
		SMTPPort: 587,
		MailFrom: `"CareerFlow" <no-reply@careerflow.com>`,
	})

	msg, err := m.buildMessage(Message{
		To:      "recruiter@example.com",
		Subject: "New Application: SDE II",
		Text:    "You have received a new application for SDE II from Asha.",
		HTML:    "<p>You have received a new application for <strong>SDE II</strong> from <strong>Asha</strong>.</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"New Application: SDE II"}, msg.GetGenHeader(mail.HeaderSubject))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "recruiter@example.com")
	assert.Contains(t, buf.String(), "text/html")
}

func TestSMTPMailer_InvalidRecipient(t *testing.T) {
	m := NewSMTPMailer(&config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587, MailFrom: "no-reply@careerflow.com"})
	err := m.Send(context.Background(), Message{To: "not an address", Subject: "x", Text: "y"})
	assert.Error(t, err)
}

func TestSMTPMailer_UnreachableRelay(t *testing.T) {
	m := NewSMTPMailer(&config.Config{SMTPHost: "127.0.0.1", SMTPPort: 1, MailFrom: "no-reply@careerflow.com"})
	err := m.Send(context.Background(), Message{To: "a@example.com", Subject: "x", Text: "y"})
	assert.Error(t, err)
}

func TestLogMailer_Send(t *testing.T) {
	var buf bytes.Buffer
	m := NewLogMailer(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, m.Send(context.Background(), Message{To: "a@example.com", Subject: "Application Update: SDE II"}))
	assert.Contains(t, buf.String(), "Application Update: SDE II")
}

// relay is a minimal SMTP server that accepts every message and counts sessions.
type relay struct {
	ln       net.Listener
	sessions atomic.Int32
	mu       sync.Mutex
	messages int
}

func startRelay(t *testing.T) *relay {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	r := &relay{ln: ln}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			r.sessions.Add(1)
			go r.serve(conn)
		}
	}()
	return r
}

func (r *relay) port() int {
	return r.ln.Addr().(*net.TCPAddr).Port
}

func (r *relay) delivered() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.messages
}

func (r *relay) serve(conn net.Conn) {
	defer conn.Close()
	rw := bufio.NewReadWriter(bufio.NewReader(conn), bufio.NewWriter(conn))
	reply := func(line string) {
		_, _ = rw.WriteString(line + "\r\n")
		_ = rw.Flush()
	}

	reply("220 localhost ESMTP")
	for {
		line, err := rw.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
			reply("250 localhost")
		case cmd == "DATA":
			reply("354 End data with <CR><LF>.<CR><LF>")
			for {
				body, err := rw.ReadString('\n')
				if err != nil {
					return
				}
				if body == ".\r\n" {
					break
				}
			}
			r.mu.Lock()
			r.messages++
			r.mu.Unlock()
			reply("250 OK queued")
		case cmd == "QUIT":
			reply("221 Bye")
			return
		default:
			reply("250 OK")
		}
	}
}

func TestSMTPMailer_ReusesConnection(t *testing.T) {
	r := startRelay(t)
	m := NewSMTPMailer(&config.Config{SMTPHost: "127.0.0.1", SMTPPort: r.port(), MailFrom: "no-reply@careerflow.com"})
	t.Cleanup(func() { _ = m.Close() })
	client := m.client

	for _, to := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		require.NoError(t, m.Send(context.Background(), Message{To: to, Subject: "New Application: SDE II", Text: "hi"}))
	}

	assert.Equal(t, 3, r.delivered())
	assert.Equal(t, int32(1), r.sessions.Load())
	assert.Same(t, client, m.client)
}

func TestSMTPMailer_RedialsAfterClose(t *testing.T) {
	r := startRelay(t)
	m := NewSMTPMailer(&config.Config{SMTPHost: "127.0.0.1", SMTPPort: r.port(), MailFrom: "no-reply@careerflow.com"})

	require.NoError(t, m.Send(context.Background(), Message{To: "a@example.com", Subject: "x", Text: "y"}))
	require.NoError(t, m.Close())
	require.NoError(t, m.Send(context.Background(), Message{To: "b@example.com", Subject: "x", Text: "y"}))
	require.NoError(t, m.Close())

	assert.Equal(t, 2, r.delivered())
	assert.Equal(t, int32(2), r.sessions.Load())
}
