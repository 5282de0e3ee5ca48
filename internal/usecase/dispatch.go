package usecase

import (
	"bytes"
	"encoding/json"
	"strings"

	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/service"
	"pushgate/internal/errors"
)

// Wire names of the delivery modes.
const (
	DispatchTypeSend                 = "send"
	DispatchTypeSendEach             = "sendEach"
	DispatchTypeSendEachForMulticast = "sendEachForMulticast"
)

// StringList decodes from either a JSON string or an array of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return errors.WithStack(err)
		}
		*l = StringList{single}

		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.WithStack(err)
	}
	*l = list

	return nil
}

// MessageList decodes from either a single message object or an array of them.
type MessageList []*entity.PushMessage

func (l *MessageList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil

		return nil
	}

	if len(data) > 0 && data[0] == '{' {
		var single entity.PushMessage
		if err := json.Unmarshal(data, &single); err != nil {
			return errors.WithStack(err)
		}
		*l = MessageList{&single}

		return nil
	}

	var list []*entity.PushMessage
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.WithStack(err)
	}
	*l = list

	return nil
}

// DispatchRequest is the wire shape shared by the tenant and administrator send endpoints.
type DispatchRequest struct {
	Type         string      `json:"type" validate:"required,oneof=send sendEach sendEachForMulticast"`
	ForAll       bool        `json:"forAll,omitempty"`
	References   StringList  `json:"references,omitempty"`
	FirebaseData MessageList `json:"firebaseData" validate:"required"`
}

// DispatchCommand is the closed set of validated delivery instructions.
type DispatchCommand interface {
	Mode() entity.DeliveryMode
	isDispatchCommand()
}

// SingleCommand sends one message to the first active token of one reference.
type SingleCommand struct {
	Reference string
	Message   *entity.PushMessage
}

// Recipient pairs one reference with its own message.
type Recipient struct {
	Reference string
	Message   *entity.PushMessage
}

// PerRecipientCommand sends each recipient its own message, in order.
type PerRecipientCommand struct {
	Recipients []Recipient
}

// MulticastCommand fans one message out to every active token of References, or of the whole app.
type MulticastCommand struct {
	ForAll     bool
	References []string
	Message    *entity.PushMessage
}

func (SingleCommand) Mode() entity.DeliveryMode       { return entity.DeliveryModeSingle }
func (PerRecipientCommand) Mode() entity.DeliveryMode { return entity.DeliveryModePerRecipient }
func (MulticastCommand) Mode() entity.DeliveryMode    { return entity.DeliveryModeMulticast }

func (SingleCommand) isDispatchCommand()       {}
func (PerRecipientCommand) isDispatchCommand() {}
func (MulticastCommand) isDispatchCommand()    {}

// NewDispatchCommand checks the request shape for its type and builds the matching command.
func NewDispatchCommand(req *DispatchRequest) (DispatchCommand, error) {
	if req == nil {
		return nil, invalidDispatch("request body is required")
	}

	for i, msg := range req.FirebaseData {
		if msg == nil {
			return nil, invalidDispatch("firebaseData[%d] must be an object", i)
		}
	}

	references := make([]string, 0, len(req.References))
	for i, ref := range req.References {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			return nil, invalidDispatch("references[%d] must not be empty", i)
		}
		references = append(references, ref)
	}

	switch req.Type {
	case DispatchTypeSend:
		if len(references) != 1 {
			return nil, invalidDispatch("send requires exactly one reference, got %d", len(references))
		}
		if len(req.FirebaseData) != 1 {
			return nil, invalidDispatch("send requires exactly one message, got %d", len(req.FirebaseData))
		}

		return &SingleCommand{Reference: references[0], Message: req.FirebaseData[0]}, nil

	case DispatchTypeSendEach:
		if len(references) == 0 {
			return nil, invalidDispatch("sendEach requires at least one reference")
		}
		if len(references) != len(req.FirebaseData) {
			return nil, invalidDispatch("sendEach requires one message per reference, got %d references and %d messages",
				len(references), len(req.FirebaseData))
		}

		recipients := make([]Recipient, len(references))
		for i, ref := range references {
			recipients[i] = Recipient{Reference: ref, Message: req.FirebaseData[i]}
		}

		return &PerRecipientCommand{Recipients: recipients}, nil

	case DispatchTypeSendEachForMulticast:
		if len(req.FirebaseData) != 1 {
			return nil, invalidDispatch("sendEachForMulticast requires exactly one message, got %d", len(req.FirebaseData))
		}
		if !req.ForAll && len(references) == 0 {
			return nil, invalidDispatch("sendEachForMulticast requires references when forAll is false")
		}

		cmd := &MulticastCommand{ForAll: req.ForAll, Message: req.FirebaseData[0]}
		if !req.ForAll {
			cmd.References = references
		}

		return cmd, nil

	default:
		return nil, invalidDispatch("unknown type %q", req.Type)
	}
}

func invalidDispatch(format string, args ...any) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(errors.Errorf(format, args...).Error()))
}

// --- Results ---

// DispatchResult is the mode-specific outcome stored on the notification record.
type DispatchResult interface {
	Counts() (successCount, failureCount int)
}

// SingleResult is the outcome of a SingleCommand.
type SingleResult struct {
	MessageID    string `json:"messageId"`
	SuccessCount int    `json:"successCount"`
	FailureCount int    `json:"failureCount"`
}

// RecipientResult is the outcome for one recipient of a PerRecipientCommand.
type RecipientResult struct {
	Reference string `json:"reference"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// PerRecipientResult is the outcome of a PerRecipientCommand.
type PerRecipientResult struct {
	Results      []RecipientResult `json:"results"`
	SuccessCount int               `json:"successCount"`
	FailureCount int               `json:"failureCount"`
}

// MulticastResult is the outcome of a MulticastCommand, responses in batch order.
type MulticastResult struct {
	SuccessCount int                    `json:"successCount"`
	FailureCount int                    `json:"failureCount"`
	TotalTokens  int                    `json:"totalTokens"`
	Responses    []service.SendResponse `json:"responses"`
}

// FailedResult is stored when a dispatch aborts.
type FailedResult struct {
	Error string `json:"error"`
}

func (r *SingleResult) Counts() (int, int)       { return r.SuccessCount, r.FailureCount }
func (r *PerRecipientResult) Counts() (int, int) { return r.SuccessCount, r.FailureCount }
func (r *MulticastResult) Counts() (int, int)    { return r.SuccessCount, r.FailureCount }
