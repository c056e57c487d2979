package webhook

import "encoding/json"

// notification is the envelope of a Cloud API delivery. Only the fields
// needed to recognise button replies are decoded.
type notification struct {
	Object string  `json:"object"`
	Entry  []entry `json:"entry"`
}

type entry struct {
	ID      string   `json:"id"`
	Changes []change `json:"changes"`
}

type change struct {
	Field string      `json:"field"`
	Value changeValue `json:"value"`
}

type changeValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Messages         []inboundMessage `json:"messages"`
}

type inboundMessage struct {
	From        string       `json:"from"`
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Button      *button      `json:"button,omitempty"`
	Interactive *interactive `json:"interactive,omitempty"`
}

type button struct {
	Payload string `json:"payload"`
	Text    string `json:"text"`
}

type interactive struct {
	Type        string       `json:"type"`
	ButtonReply *buttonReply `json:"button_reply,omitempty"`
}

type buttonReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// reply is one quick-reply tap extracted from a delivery.
type reply struct {
	From      string
	MessageID string
	Payload   string
}

// parseReplies returns the button replies of a delivery. Anything that is
// not a Cloud API message notification yields no replies and no error.
func parseReplies(body []byte) []reply {
	var n notification
	if err := json.Unmarshal(body, &n); err != nil {
		return nil
	}

	var out []reply
	for _, e := range n.Entry {
		for _, c := range e.Changes {
			if c.Field != "messages" {
				continue
			}
			for _, m := range c.Value.Messages {
				payload := ""
				switch {
				case m.Type == "button" && m.Button != nil:
					payload = m.Button.Payload
				case m.Type == "interactive" && m.Interactive != nil &&
					m.Interactive.Type == "button_reply" && m.Interactive.ButtonReply != nil:
					payload = m.Interactive.ButtonReply.ID
				}
				if payload == "" || m.From == "" {
					continue
				}
				out = append(out, reply{From: m.From, MessageID: m.ID, Payload: payload})
			}
		}
	}
	return out
}
