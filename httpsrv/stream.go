package httpsrv

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tutils/lcgviz"
	"github.com/tutils/lcgviz/lcg"
	"github.com/tutils/lcgviz/render"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  4 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

const readTimeout = time.Second * 15
const pingPeriod = time.Second * 10
const writeTimeout = time.Second

// longest pause a client may ask for between phases
const maxStepDelay = 10 * time.Second

// Stream message types.
const (
	MessageSession = "session"
	MessageFrame   = "frame"
	MessageControl = "control"
	MessageDone    = "done"
	MessageError   = "error"
)

// Frame is one phase of one step of the animation.
type Frame struct {
	Step    int       `json:"step"`
	Total   int       `json:"total"`
	Phase   lcg.Phase `json:"phase"`
	Value   uint64    `json:"value"`
	Caption string    `json:"caption"`
	// Point is the new scatter point, set on the modulo phase.
	Point *lcg.Pair `json:"point,omitempty"`
}

// StreamMessage is a server to client stream message.
type StreamMessage struct {
	Type    string         `json:"type"`
	Session string         `json:"session,omitempty"`
	Report  *render.Report `json:"report,omitempty"`
	Frame   *Frame         `json:"frame,omitempty"`
	Paused  *bool          `json:"paused,omitempty"`
	Delay   float64        `json:"delay,omitempty"`
	Stats   *lcg.Stats     `json:"stats,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Control is a client to server stream message.
type Control struct {
	Action string  `json:"action"` // pause, resume or speed
	Value  float64 `json:"value,omitempty"`
}

type wsWriter struct {
	conn *websocket.Conn
}

func (wsw *wsWriter) Write(p []byte) (n int, err error) {
	wsw.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	err = wsw.conn.WriteMessage(websocket.TextMessage, p)
	return len(p), err
}

func newWsWriter(conn *websocket.Conn) *wsWriter {
	return &wsWriter{
		conn: conn,
	}
}

// player paces the animation and applies client controls.
type player struct {
	ctl     chan Control
	out     *lcgviz.MessageWriter
	delay   time.Duration
	paused  bool
	onPause func(bool)
}

func (pl *player) apply(c Control) {
	switch c.Action {
	case "pause":
		pl.paused = true
	case "resume":
		pl.paused = false
	case "speed":
		d := time.Duration(c.Value * float64(time.Second))
		if d > 0 && d <= maxStepDelay {
			pl.delay = d
		}
	default:
		return
	}
	if pl.onPause != nil {
		pl.onPause(pl.paused)
	}
	paused := pl.paused
	pl.out.WriteMessage(StreamMessage{Type: MessageControl, Paused: &paused, Delay: pl.delay.Seconds()})
}

// wait sleeps for factor times the current delay, holding while paused.
func (pl *player) wait(ctx context.Context, factor float64) error {
	timer := time.NewTimer(time.Duration(float64(pl.delay) * factor))
	defer timer.Stop()
	for {
		if pl.paused {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case c := <-pl.ctl:
				pl.apply(c)
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c := <-pl.ctl:
			pl.apply(c)
		case <-timer.C:
			return nil
		}
	}
}

// handleStream upgrades to a websocket and plays the step-by-step derivation.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	p, err := s.paramsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	rep, err := render.NewReport(p)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ERROR] %s websocket升级失败: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()

	sess := s.sessions.Start(p, r.RemoteAddr, len(rep.Steps))
	defer s.sessions.Remove(sess.ID)
	log.Printf("[INFO] %s 开始动画会话 %s: %v", r.RemoteAddr, sess.ID, p)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	out := lcgviz.NewMessageWriter(lcgviz.NewSyncWriter(newWsWriter(conn)))
	pl := &player{
		ctl:   make(chan Control, 8),
		out:   out,
		delay: s.opts.stepDelay,
		onPause: func(paused bool) {
			status := StatusRunning
			if paused {
				status = StatusPaused
			}
			s.sessions.SetStatus(sess.ID, status)
		},
	}

	keepalive(conn)
	done := make(chan struct{})
	defer close(done)
	go startPing(conn, done)
	go readControls(ctx, cancel, conn, out, pl.ctl)

	if err := out.WriteMessage(StreamMessage{Type: MessageSession, Session: sess.ID, Report: rep}); err != nil {
		return
	}

	total := len(rep.Steps)
	for i, step := range rep.Steps {
		for ph := lcg.PhaseStart; ph < lcg.PhaseCount; ph++ {
			f := &Frame{
				Step:    i + 1,
				Total:   total,
				Phase:   ph,
				Value:   step.Value(ph),
				Caption: render.Caption(p, step, ph),
			}
			if ph == lcg.PhaseModulo {
				f.Point = &lcg.Pair{X: step.X, Y: step.Next}
			}
			if err := out.WriteMessage(StreamMessage{Type: MessageFrame, Frame: f}); err != nil {
				log.Printf("[INFO] %s 会话 %s 中断: %v", r.RemoteAddr, sess.ID, err)
				return
			}
			sess.frames.Add(1)

			factor := 1.0
			if ph == lcg.PhaseModulo {
				factor = 0.5
			}
			if err := pl.wait(ctx, factor); err != nil {
				log.Printf("[INFO] %s 会话 %s 结束: %v", r.RemoteAddr, sess.ID, err)
				return
			}
		}
	}

	s.sessions.SetStatus(sess.ID, StatusDone)
	out.WriteMessage(StreamMessage{Type: MessageDone, Session: sess.ID, Stats: &rep.Stats})
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
	log.Printf("[INFO] %s 会话 %s 完成, %d 帧", r.RemoteAddr, sess.ID, sess.frames.Value())
}

// readControls forwards client controls until the connection fails, then cancels the stream.
// Malformed controls are answered with an error message from this goroutine.
func readControls(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, out *lcgviz.MessageWriter, ctl chan<- Control) {
	defer cancel()
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var c Control
		if err := json.Unmarshal(msg, &c); err != nil {
			out.WriteMessage(StreamMessage{Type: MessageError, Error: "bad control: " + err.Error()})
			continue
		}
		select {
		case ctl <- c:
		case <-ctx.Done():
			return
		}
	}
}

// keepalive must run before the read loop starts.
func keepalive(conn *websocket.Conn) {
	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})
}

func startPing(conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeTimeout))
		case <-done:
			return
		}
	}
}
