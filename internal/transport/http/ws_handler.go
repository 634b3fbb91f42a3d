package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/logger"
)

const maxMessageBytes = 64 << 10

type WSHandler struct {
	service  *app.QuizService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type checkAnswerPayload struct {
	QuestionID *int          `json:"questionId"`
	Answer     domain.Option `json:"answer"`
}

type answerResult struct {
	QuestionID int `json:"questionId"`
	domain.AnswerCheck
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

// ServeWS upgrades the request and answers checkAnswer and submit messages
// in order. The connection carries no session state.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context()).WithPrefix("ws")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageBytes)

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("read error: %v", err)
			}
			return
		}

		reply := h.dispatch(r, inbound)
		if err := conn.WriteJSON(reply); err != nil {
			log.Warn("write error: %v", err)
			return
		}
	}
}

func (h *WSHandler) dispatch(r *http.Request, inbound inboundMessage) any {
	ctx := r.Context()

	switch inbound.Type {
	case "checkAnswer":
		var payload checkAnswerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errorMessage(r, domain.InvalidInput("payload", "invalid checkAnswer payload"))
		}
		if payload.QuestionID == nil {
			return errorMessage(r, domain.InvalidInput("questionId", "is required"))
		}
		check, err := h.service.CheckAnswer(ctx, *payload.QuestionID, payload.Answer)
		if err != nil {
			return errorMessage(r, err)
		}
		return outboundMessage[answerResult]{Type: "answerResult", Payload: answerResult{
			QuestionID:  *payload.QuestionID,
			AnswerCheck: check,
		}}

	case "submit":
		var payload submitRequest
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errorMessage(r, domain.InvalidInput("payload", "invalid submit payload"))
		}
		answers, err := parseAnswers(payload.Answers)
		if err != nil {
			return errorMessage(r, err)
		}
		result, err := h.service.Submit(ctx, answers, payload.UserName)
		if err != nil {
			return errorMessage(r, err)
		}
		return outboundMessage[domain.ScoreResult]{Type: "result", Payload: result}

	default:
		return errorMessage(r, domain.InvalidInput("type", "unsupported message type "+inbound.Type))
	}
}

func errorMessage(r *http.Request, err error) outboundMessage[errorBody] {
	appErr := domain.AsError(err)
	log := logger.FromContext(r.Context()).WithPrefix("ws")
	if appErr.Kind == domain.KindInternal {
		log.Error("server error: %v", appErr)
	} else {
		log.Debug("client error: %v", appErr)
	}
	return outboundMessage[errorBody]{
		Type:    "error",
		Payload: errorBody{Code: appErr.Kind, Message: appErr.Message, Field: appErr.Field},
	}
}
