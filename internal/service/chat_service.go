package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uema-profitec/sigep-api/internal/dto"
	"github.com/uema-profitec/sigep-api/internal/llm"
	"github.com/uema-profitec/sigep-api/internal/models"
	"github.com/uema-profitec/sigep-api/internal/store"
	appErrors "github.com/uema-profitec/sigep-api/pkg/errors"
)

// Canned assistant strings. The greeting opens every transcript; the
// apology replaces the reply on any external failure; the processed
// fallback covers a reply with neither text nor a recognised tool call.
const (
	GreetingText  = "Olá! Sou a IA do SIGEP. Posso analisar dados, tirar dúvidas e navegar pelo sistema para você. Como posso ajudar?"
	ApologyText   = "Desculpe, tive um problema ao processar isso. Verifique a chave de API ou tente novamente."
	ProcessedText = "Comando processado."
)

const navigateToolName = "navigateTo"

// NavigationPages is the closed set of destinations the assistant may
// steer the client to.
var NavigationPages = []string{"dashboard", "professors", "disciplines", "semesters", "reports"}

type chatStore interface {
	Snapshot() store.Snapshot
	AppendChatMessage(m models.ChatMessage)
	ChatMessages() []models.ChatMessage
}

type generator interface {
	Generate(ctx context.Context, req llm.Request) (*llm.Response, error)
}

// ChatService turns one user question (plus optional attachment) into
// one grounded round-trip with the generative service, interpreting at
// most one navigation tool call per turn.
type ChatService struct {
	store      chatStore
	gen        generator
	validator  *validator.Validate
	logger     *zap.Logger
	configured bool
	inFlight   atomic.Bool
	now        func() time.Time
}

// NewChatService constructs the service and installs the greeting into
// an empty transcript. configured=false blocks every send with a
// notice instead of attempting the call.
func NewChatService(st chatStore, gen generator, configured bool, validate *validator.Validate, logger *zap.Logger) *ChatService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ChatService{store: st, gen: gen, validator: validate, logger: logger, configured: configured, now: time.Now}

	if len(st.ChatMessages()) == 0 {
		st.AppendChatMessage(models.ChatMessage{
			ID:        models.GreetingMessageID,
			Role:      models.ChatRoleAssistant,
			Text:      GreetingText,
			Timestamp: s.now().UTC(),
		})
	}
	return s
}

// Transcript returns the full conversation, greeting included.
func (s *ChatService) Transcript() []models.ChatMessage {
	return s.store.ChatMessages()
}

// Send performs one assistant turn. Exactly one user and one assistant
// message are appended on every accepted send; rejected sends (guards)
// append nothing. Only one call may be outstanding at a time.
func (s *ChatService) Send(ctx context.Context, req dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" && req.Attachment == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "message text or attachment is required")
	}
	if !s.configured {
		return nil, appErrors.ErrAINotConfigured
	}

	var attachment *llm.Attachment
	attachmentName := ""
	if req.Attachment != nil {
		if err := s.validator.Struct(req.Attachment); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attachment payload")
		}
		data, err := base64.StdEncoding.DecodeString(req.Attachment.Data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "attachment is not valid base64")
		}
		attachment = &llm.Attachment{MIMEType: req.Attachment.MimeType, Data: data}
		attachmentName = req.Attachment.Name
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, appErrors.ErrChatBusy
	}
	defer s.inFlight.Store(false)

	// History is assembled before the user turn is appended so the
	// current question travels as the live turn, not as history.
	history := s.history()

	userMsg := models.ChatMessage{
		ID:             uuid.NewString(),
		Role:           models.ChatRoleUser,
		Text:           text,
		Timestamp:      s.now().UTC(),
		AttachmentName: attachmentName,
	}
	s.store.AppendChatMessage(userMsg)

	resp := &dto.SendMessageResponse{UserMessage: userMsg}

	result, err := s.gen.Generate(ctx, llm.Request{
		SystemInstruction: s.systemInstruction(),
		History:           history,
		Text:              text,
		Attachment:        attachment,
		Tools:             []llm.FunctionDeclaration{navigationTool()},
	})

	replyText := ""
	if err != nil {
		s.logger.Warn("assistant call failed", zap.Error(err))
		replyText = ApologyText
	} else {
		replyText = result.Text
		if page, ok := firstNavigation(result.FunctionCalls); ok {
			resp.NavigateTo = page
			replyText = fmt.Sprintf("Navegando para %s... Algo mais?", page)
		}
		if replyText == "" {
			replyText = ProcessedText
		}
	}

	assistantMsg := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.ChatRoleAssistant,
		Text:      replyText,
		Timestamp: s.now().UTC(),
	}
	s.store.AppendChatMessage(assistantMsg)
	resp.AssistantMessage = assistantMsg

	return resp, nil
}

// history replays the prior transcript, skipping the greeting.
func (s *ChatService) history() []llm.Turn {
	messages := s.store.ChatMessages()
	turns := make([]llm.Turn, 0, len(messages))
	for _, m := range messages {
		if m.ID == models.GreetingMessageID {
			continue
		}
		role := llm.RoleUser
		if m.Role == models.ChatRoleAssistant {
			role = llm.RoleModel
		}
		turns = append(turns, llm.Turn{Role: role, Text: m.Text})
	}
	return turns
}

// firstNavigation returns the destination of the first recognised
// navigateTo invocation with a valid page; later calls are ignored.
func firstNavigation(calls []llm.FunctionCall) (string, bool) {
	for _, call := range calls {
		if call.Name != navigateToolName {
			continue
		}
		page, _ := call.Args["page"].(string)
		for _, known := range NavigationPages {
			if page == known {
				return page, true
			}
		}
	}
	return "", false
}

func navigationTool() llm.FunctionDeclaration {
	return llm.FunctionDeclaration{
		Name:        navigateToolName,
		Description: "Navegar para uma página específica do sistema. Use isso quando o usuário pedir para ir, abrir ou ver uma tela.",
		Properties: map[string]llm.PropertySchema{
			"page": {
				Description: "A página de destino.",
				Enum:        NavigationPages,
			},
		},
		Required: []string{"page"},
	}
}

// Grounding projection: names instead of raw ids, document counts,
// offerings resolved to display names with fallback labels.
type professorProjection struct {
	ID            string            `json:"id"`
	Nome          string            `json:"nome"`
	Email         string            `json:"email"`
	Titulacao     models.Titulation `json:"titulacao"`
	Area          string            `json:"area"`
	CargaMaxima   int               `json:"cargaMaxima"`
	Ativo         bool              `json:"ativo"`
	QtdDocumentos int               `json:"qtdDocumentos"`
}

type offeringProjection struct {
	Disciplina   string `json:"disciplina"`
	Professor    string `json:"professor"`
	CargaHoraria int    `json:"cargaHoraria"`
}

type semesterProjection struct {
	Nome    string                `json:"nome"`
	Status  models.SemesterStatus `json:"status"`
	Inicio  string                `json:"inicio"`
	Fim     string                `json:"fim"`
	Ofertas []offeringProjection  `json:"ofertas"`
}

type systemDataProjection struct {
	Professores []professorProjection `json:"professores"`
	Disciplinas []models.Discipline   `json:"disciplinas"`
	Semestres   []semesterProjection  `json:"semestres"`
}

func (s *ChatService) systemInstruction() string {
	snap := s.store.Snapshot()

	data := systemDataProjection{
		Professores: make([]professorProjection, 0, len(snap.Professors)),
		Disciplinas: snap.Disciplines,
		Semestres:   make([]semesterProjection, 0, len(snap.Semesters)),
	}

	professorNames := make(map[string]string, len(snap.Professors))
	for _, p := range snap.Professors {
		professorNames[p.ID] = p.Name
		data.Professores = append(data.Professores, professorProjection{
			ID:            p.ID,
			Nome:          p.Name,
			Email:         p.Email,
			Titulacao:     p.Titulation,
			Area:          p.Area,
			CargaMaxima:   p.MaxWorkload,
			Ativo:         p.Active,
			QtdDocumentos: len(p.Documents),
		})
	}

	disciplineNames := make(map[string]string, len(snap.Disciplines))
	for _, d := range snap.Disciplines {
		disciplineNames[d.ID] = d.Name
	}

	for _, sem := range snap.Semesters {
		proj := semesterProjection{
			Nome:    sem.Name,
			Status:  sem.Status,
			Inicio:  sem.StartDate,
			Fim:     sem.EndDate,
			Ofertas: make([]offeringProjection, 0, len(sem.Offerings)),
		}
		for _, o := range sem.Offerings {
			disc, ok := disciplineNames[o.DisciplineID]
			if !ok {
				disc = UnknownDisciplineLabel
			}
			prof := PendingProfessorLabel
			if o.ProfessorID != nil {
				if name, ok := professorNames[*o.ProfessorID]; ok {
					prof = name
				}
			}
			proj.Ofertas = append(proj.Ofertas, offeringProjection{
				Disciplina:   disc,
				Professor:    prof,
				CargaHoraria: o.Workload,
			})
		}
		data.Semestres = append(data.Semestres, proj)
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		s.logger.Warn("failed to encode grounding data", zap.Error(err))
		encoded = []byte("{}")
	}

	return fmt.Sprintf(`Você é o assistente inteligente do sistema SIGEP (Gestão de Professores UEMA).

DADOS DO SISTEMA (Json):
%s

INSTRUÇÕES:
1. Responda baseando-se nos DADOS DO SISTEMA.
2. Seja prestativo e direto.
3. Se o usuário pedir para ir a algum lugar, use a ferramenta 'navigateTo'.
4. Mantenha o contexto da conversa.`, encoded)
}
