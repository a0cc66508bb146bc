package mail

import (
	"bytes"
	"context"
	"net"
	"net/textproto"
	"strconv"
	"strings"
	"testing"

	"github.com/ONSdigital/dp-applications-api/config"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	. "github.com/smartystreets/goconvey/convey"
)

// relayScript records the DATA payload a scripted relay received
type relayScript struct {
	data bytes.Buffer
	done chan struct{}
}

// serveRelay speaks just enough SMTP for one plaintext delivery
func serveRelay(l net.Listener, script *relayScript) {
	defer close(script.done)
	conn, err := l.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	tc := textproto.NewConn(conn)
	_ = tc.PrintfLine("220 relay.test ESMTP")
	inData := false
	for {
		line, err := tc.ReadLine()
		if err != nil {
			return
		}
		if inData {
			if line == "." {
				inData = false
				_ = tc.PrintfLine("250 2.0.0 accepted")
				continue
			}
			script.data.WriteString(line + "\n")
			continue
		}
		switch {
		case strings.HasPrefix(line, "EHLO"), strings.HasPrefix(line, "HELO"):
			_ = tc.PrintfLine("250-relay.test")
			_ = tc.PrintfLine("250 8BITMIME")
		case strings.HasPrefix(line, "MAIL FROM"):
			_ = tc.PrintfLine("250 2.1.0 sender ok")
		case strings.HasPrefix(line, "RCPT TO"):
			_ = tc.PrintfLine("250 2.1.5 recipient ok")
		case line == "DATA":
			inData = true
			_ = tc.PrintfLine("354 end with <CRLF>.<CRLF>")
		case line == "QUIT":
			_ = tc.PrintfLine("221 2.0.0 bye")
			return
		default:
			_ = tc.PrintfLine("250 ok")
		}
	}
}

func relayConfig(l net.Listener, startTLS bool) config.MailConfig {
	host, portStr, _ := net.SplitHostPort(l.Addr().String())
	port, _ := strconv.Atoi(portStr)
	return config.MailConfig{
		Host:        host,
		Port:        port,
		From:        "noreply@example.com",
		StartTLS:    startTLS,
		SendRetries: 1,
	}
}

func TestSMTPSenderSend(t *testing.T) {
	Convey("Given a plaintext relay", t, func() {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		So(err, ShouldBeNil)
		defer l.Close()

		script := &relayScript{done: make(chan struct{})}
		go serveRelay(l, script)

		sender := NewSMTPSender(relayConfig(l, false))

		Convey("When a message is sent", func() {
			err := sender.Send(context.Background(), "applicant@example.com", "Your application", "Decision attached.")
			So(err, ShouldBeNil)

			<-script.done

			Convey("Then the relay received the assembled message", func() {
				payload := script.data.String()
				So(payload, ShouldContainSubstring, "From: noreply@example.com")
				So(payload, ShouldContainSubstring, "To: applicant@example.com")
				So(payload, ShouldContainSubstring, "Subject: Your application")
				So(payload, ShouldContainSubstring, "Decision attached.")
			})
		})
	})

	Convey("Given a relay that does not offer STARTTLS", t, func() {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		So(err, ShouldBeNil)
		defer l.Close()

		script := &relayScript{done: make(chan struct{})}
		go serveRelay(l, script)

		sender := NewSMTPSender(relayConfig(l, true))

		Convey("Then a send requiring STARTTLS is refused", func() {
			err := sender.Send(context.Background(), "applicant@example.com", "subject", "body")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "does not support STARTTLS")
		})
	})

	Convey("Given no relay is listening", t, func() {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		So(err, ShouldBeNil)
		cfg := relayConfig(l, false)
		So(l.Close(), ShouldBeNil)

		sender := NewSMTPSender(cfg)

		Convey("Then the send fails after its attempts are spent", func() {
			err := sender.Send(context.Background(), "applicant@example.com", "subject", "body")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "failed to send mail")
		})
	})
}

func TestSMTPSenderChecker(t *testing.T) {
	Convey("Given a reachable relay", t, func() {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		So(err, ShouldBeNil)
		defer l.Close()

		go func() {
			conn, err := l.Accept()
			if err == nil {
				conn.Close()
			}
		}()

		sender := NewSMTPSender(relayConfig(l, false))
		state := healthcheck.NewCheckState("mail")

		Convey("Then the checker reports OK", func() {
			err := sender.Checker(context.Background(), state)
			So(err, ShouldBeNil)
			So(state.Status(), ShouldEqual, healthcheck.StatusOK)
			So(state.Message(), ShouldEqual, "smtp relay is reachable")
		})
	})

	Convey("Given the relay is unreachable", t, func() {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		So(err, ShouldBeNil)
		cfg := relayConfig(l, false)
		So(l.Close(), ShouldBeNil)

		sender := NewSMTPSender(cfg)
		state := healthcheck.NewCheckState("mail")

		Convey("Then the checker reports critical", func() {
			err := sender.Checker(context.Background(), state)
			So(err, ShouldBeNil)
			So(state.Status(), ShouldEqual, healthcheck.StatusCritical)
		})
	})
}

func TestMessageAssembly(t *testing.T) {
	Convey("Given header values containing CRLF sequences", t, func() {
		payload := string(message(
			"noreply@example.com",
			"applicant@example.com\r\nBcc: sneak@example.com",
			"status\nX-Spam: yes",
			"body line",
		))

		Convey("Then the injected headers are collapsed onto one line", func() {
			So(payload, ShouldContainSubstring, "To: applicant@example.comBcc: sneak@example.com\r\n")
			So(payload, ShouldContainSubstring, "Subject: statusX-Spam: yes\r\n")
		})

		Convey("Then the body follows a blank line", func() {
			So(payload, ShouldEndWith, "\r\n\r\nbody line")
		})
	})

	Convey("Given a subject outside printable ASCII", t, func() {
		payload := string(message("noreply@example.com", "applicant@example.com", "Решение по заявке", "body"))

		Convey("Then the subject is Q-encoded", func() {
			So(payload, ShouldContainSubstring, "Subject: =?utf-8?q?")
		})
	})
}
