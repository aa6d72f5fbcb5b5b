package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/mystery-room/pkg/chat"
	"github.com/jwebster45206/mystery-room/pkg/state"
)

const (
	AgentName       = "Narrator"
	PlaceHolderText = "Describe what you want to investigate..."
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config       *ConsoleConfig
	client       *http.Client
	gameState    *state.GameState
	history      []chat.ChatMessage
	scenes       []SceneSummary
	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error
	loading      bool
	progress     int

	eventChan chan SSEEvent
	cancelSSE context.CancelFunc

	// Quit confirmation state
	showQuitModal bool

	// Progress bar state
	progressTick int
}

type actionResponseMsg struct {
	response *chat.ActionResponse
	err      error
}

type narrativeMsg struct {
	text string
	err  error
}

type gameStateMsg struct {
	gameState *state.GameState
	err       error
}

type scenesLoadedMsg struct {
	scenes []SceneSummary
	err    error
}

type sseEventMsg SSEEvent

type progressTickMsg struct{}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	clueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")). // gold
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, gs *state.GameState) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = chat.MaxMessageLength
	ta.SetWidth(50)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	eventChan := make(chan SSEEvent, 16)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_ = listenToSSE(ctx, cfg.APIBaseURL, gs.ID, eventChan)
	}()

	return ConsoleUI{
		config:       cfg,
		client:       client,
		gameState:    gs,
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: metaVp,
		eventChan:    eventChan,
		cancelSSE:    cancel,
		ready:        false,
	}
}

func (m *ConsoleUI) writeMetadata() string {
	gs := m.gameState
	var content strings.Builder
	content.WriteString(titleStyle.Render("CASE FILE") + "\n\n")

	content.WriteString("Session:\n")
	content.WriteString(gs.ID.String()[:8] + "...\n\n")

	content.WriteString("Case:\n")
	content.WriteString(gs.CaseName + "\n\n")

	content.WriteString("Current scene:\n")
	content.WriteString(m.sceneName(gs.CurrentScene) + "\n\n")

	content.WriteString(fmt.Sprintf("Progress: %d%%\n", m.progress))
	content.WriteString(fmt.Sprintf("Discovered: %d\n", gs.DiscoveredCount()))
	content.WriteString(fmt.Sprintf("Examined: %d\n", gs.ExaminedCount()))
	content.WriteString(fmt.Sprintf("Notes: %d\n\n", len(gs.Notes)))

	content.WriteString("Commands:\n")
	content.WriteString("• /evidence\n")
	content.WriteString("• /examine <clue>\n")
	content.WriteString("• /note <text>\n")
	content.WriteString("• /hints\n")
	content.WriteString("• /puzzle <answer>\n")
	content.WriteString("• /connect\n")
	content.WriteString("• /theory <text>\n")
	content.WriteString("• /copy\n")
	content.WriteString("• /restart\n")
	content.WriteString("• /help\n")

	return content.String()
}

func (m *ConsoleUI) sceneName(sceneID string) string {
	for _, s := range m.scenes {
		if s.ID == sceneID {
			return s.Name
		}
	}
	return sceneID
}

// writeChatContent rebuilds the chat transcript for the current viewport width.
func (m *ConsoleUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6 // Account for left(3) + right(3) padding

	var content strings.Builder
	content.WriteString(titleStyle.Render("MYSTERY ROOM") + "\n\n")
	content.WriteString("Investigate each scene, examine your evidence and solve the case.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(chatWidth-6, 10))) + "\n\n")

	for _, msg := range m.history {
		switch msg.Role {
		case chat.ChatRoleAgent:
			wrapped := wordwrap.String(msg.Content, chatWidth-6)
			content.WriteString(narratorStyle.Render(AgentName+": ") + wrapped + "\n\n")
		case chat.ChatRoleUser:
			content.WriteString(userStyle.Render("You: ") + wordwrap.String(msg.Content, chatWidth-6) + "\n\n")
		case chat.ChatRoleSystem:
			content.WriteString(clueStyle.Render(wordwrap.String(msg.Content, chatWidth-6)) + "\n\n")
		}
	}

	if m.loading {
		content.WriteString(m.renderProgressBar())
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

func (m *ConsoleUI) appendNarrator(text string) {
	m.history = append(m.history, chat.ChatMessage{Role: chat.ChatRoleAgent, Content: text})
}

func (m *ConsoleUI) appendSystem(text string) {
	m.history = append(m.history, chat.ChatMessage{Role: chat.ChatRoleSystem, Content: text})
}

func (m ConsoleUI) Init() tea.Cmd {
	return tea.Batch(
		m.loadScenes(),
		m.loadSceneNarrative(m.gameState.CurrentScene),
		m.waitForEvent(),
		textarea.Blink,
	)
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth := int(float64(m.width)*0.75) - 4
		metaWidth := m.width - chatWidth - 6

		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(chatWidth - 4)

		m.ready = true
		m.writeChatContent()
		m.metaViewport.SetContent(m.writeMetadata())

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}

			m.textarea.Reset()
			m.loading = true
			m.progressTick = 0

			m.history = append(m.history, chat.ChatMessage{Role: chat.ChatRoleUser, Content: input})
			m.writeChatContent()

			return m, tea.Batch(m.sendAction(input), progressTick())
		}

	case actionResponseMsg:
		m.loading = false
		if msg.err != nil {
			m.appendSystem(errorStyle.Render("Error: " + msg.err.Error()))
		} else {
			m.progress = msg.response.Progress
			m.appendNarrator(msg.response.Outcome)
			if msg.response.Suggestion != "" {
				m.appendSystem(fmt.Sprintf("Did you mean %q?", msg.response.Suggestion))
			}
		}
		m.writeChatContent()
		return m, m.refreshGameState()

	case narrativeMsg:
		m.loading = false
		if msg.err != nil {
			m.appendSystem(errorStyle.Render("Error: " + msg.err.Error()))
		} else {
			m.appendNarrator(msg.text)
		}
		m.writeChatContent()
		return m, m.refreshGameState()

	case gameStateMsg:
		if msg.err == nil && msg.gameState != nil {
			m.gameState = msg.gameState
			m.metaViewport.SetContent(m.writeMetadata())
		}

	case scenesLoadedMsg:
		if msg.err == nil {
			m.scenes = msg.scenes
			m.metaViewport.SetContent(m.writeMetadata())
		}

	case sseEventMsg:
		m.appendSystem("◆ " + formatEvent(SSEEvent(msg)))
		m.writeChatContent()
		return m, tea.Batch(m.refreshGameState(), m.waitForEvent())

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			m.writeChatContent()
			return m, progressTick()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func formatEvent(ev SSEEvent) string {
	switch ev.Type {
	case "clue.discovered":
		return fmt.Sprintf("New evidence: %v", ev.Data["clue_id"])
	case "clue.examined":
		return fmt.Sprintf("Evidence examined: %v", ev.Data["clue_id"])
	case "puzzle.solved":
		return fmt.Sprintf("Puzzle solved in %v", ev.Data["scene_id"])
	case "scene.completed":
		if next, ok := ev.Data["next_scene_id"].(string); ok && next != "" {
			return fmt.Sprintf("Scene complete. The %s is now open.", next)
		}
		return "Scene complete."
	case "game.completed":
		return "Case closed!"
	case "connected":
		return "Live updates connected."
	default:
		return ev.Type
	}
}

func (m ConsoleUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	m.textarea.Reset()

	parts := strings.SplitN(strings.TrimSpace(input), " ", 2)
	cmd := strings.ToLower(parts[0])
	arg := ""
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}

	switch cmd {
	case "/help":
		m.appendSystem(helpText)
		m.writeChatContent()

	case "/evidence":
		m.appendSystem(m.evidenceText())
		m.writeChatContent()

	case "/examine":
		if arg == "" {
			m.appendSystem("Usage: /examine <clue_id>")
			m.writeChatContent()
			return m, nil
		}
		m.loading = true
		m.progressTick = 0
		m.writeChatContent()
		return m, tea.Batch(m.examine(normalizeClueID(arg)), progressTick())

	case "/note":
		if arg == "" {
			m.appendSystem("Usage: /note <text>")
			m.writeChatContent()
			return m, nil
		}
		return m, m.saveNote(arg)

	case "/notes":
		m.appendSystem(m.notesText())
		m.writeChatContent()

	case "/hints":
		return m, m.fetchHints()

	case "/puzzle":
		if arg == "" {
			return m, m.showPuzzle()
		}
		m.loading = true
		m.progressTick = 0
		m.writeChatContent()
		return m, tea.Batch(m.solvePuzzle(arg), progressTick())

	case "/connect":
		m.loading = true
		m.progressTick = 0
		m.writeChatContent()
		return m, tea.Batch(m.progression(arg), progressTick())

	case "/theory":
		if arg == "" {
			m.appendSystem("Usage: /theory <your theory of the case>")
			m.writeChatContent()
			return m, nil
		}
		m.loading = true
		m.progressTick = 0
		m.writeChatContent()
		return m, tea.Batch(m.conclude(arg), progressTick())

	case "/scene":
		m.loading = true
		m.progressTick = 0
		m.writeChatContent()
		return m, tea.Batch(m.loadSceneNarrative(m.gameState.CurrentScene), progressTick())

	case "/copy":
		if err := clipboard.WriteAll(m.gameState.ID.String()); err != nil {
			m.appendSystem(errorStyle.Render("Could not copy session ID: " + err.Error()))
		} else {
			m.appendSystem("Session ID copied to clipboard.")
		}
		m.writeChatContent()

	case "/restart":
		return m, m.restart()

	case "/quit":
		m.showQuitModal = true

	default:
		m.appendSystem("Unknown command. Type /help for a list.")
		m.writeChatContent()
	}

	return m, nil
}

const helpText = `Commands:
/evidence - List discovered clues
/examine <clue> - Examine a discovered clue
/note <text> - Add a case note
/notes - Show your notes
/hints - Get investigation tips
/puzzle - Show the scene's puzzle
/puzzle <answer> - Attempt the puzzle (sequence: a,b,c / pairs: a-b,c-d / code: word)
/connect - Connect the evidence so far
/theory <text> - Present your final theory
/scene - Replay the scene description
/copy - Copy session ID to clipboard
/restart - Restart the case
Ctrl+C - Quit

Anything else you type is an investigation action.`

// normalizeClueID maps free-form input like "Locked Drawer" to a clue id.
func normalizeClueID(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

func (m *ConsoleUI) evidenceText() string {
	var sb strings.Builder
	sb.WriteString("Evidence collection:\n")
	ids := m.gameState.DiscoveredClueIDs()
	if len(ids) == 0 {
		sb.WriteString("Nothing discovered yet. Search the scene!")
		return sb.String()
	}
	for _, id := range ids {
		marker := " "
		if cs := m.gameState.Clues[id]; cs != nil && cs.Examined {
			marker = "✓"
		}
		sb.WriteString(fmt.Sprintf("  [%s] %s\n", marker, id))
	}
	sb.WriteString("\n✓ = examined. Use /examine <clue> for details.")
	return sb.String()
}

func (m *ConsoleUI) notesText() string {
	if len(m.gameState.Notes) == 0 {
		return "No notes yet. Use /note <text> to record your thinking."
	}
	var sb strings.Builder
	sb.WriteString("Case notes:\n")
	for i, n := range m.gameState.Notes {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, n.Content))
	}
	return sb.String()
}

func (m ConsoleUI) sendAction(action string) tea.Cmd {
	return func() tea.Msg {
		resp, err := sendAction(m.client, m.config.APIBaseURL, m.gameState.ID, action)
		return actionResponseMsg{resp, err}
	}
}

func (m ConsoleUI) examine(clueID string) tea.Cmd {
	return func() tea.Msg {
		resp, err := examineClue(m.client, m.config.APIBaseURL, m.gameState.ID, clueID)
		if err != nil {
			return narrativeMsg{err: err}
		}
		return narrativeMsg{text: resp.Narrative}
	}
}

func (m ConsoleUI) saveNote(text string) tea.Cmd {
	return func() tea.Msg {
		if err := addNote(m.client, m.config.APIBaseURL, m.gameState.ID, text); err != nil {
			return narrativeMsg{err: err}
		}
		gs, err := getGameState(m.client, m.config.APIBaseURL, m.gameState.ID)
		return gameStateMsg{gs, err}
	}
}

func (m ConsoleUI) fetchHints() tea.Cmd {
	return func() tea.Msg {
		hints, err := getHints(m.client, m.config.APIBaseURL, m.gameState.ID)
		if err != nil {
			return narrativeMsg{err: err}
		}
		if len(hints) == 0 {
			return narrativeMsg{text: "No hints right now. Keep investigating."}
		}
		return narrativeMsg{text: "Hints:\n• " + strings.Join(hints, "\n• ")}
	}
}

func (m ConsoleUI) showPuzzle() tea.Cmd {
	return func() tea.Msg {
		prompt, err := getPuzzlePrompt(m.client, m.config.APIBaseURL, m.gameState.CurrentScene)
		if err != nil {
			return narrativeMsg{err: err}
		}

		var sb strings.Builder
		sb.WriteString(prompt.Title + "\n" + prompt.Description + "\n")
		switch prompt.Type {
		case "sequence":
			sb.WriteString("Arrange: " + strings.Join(prompt.Items, ", "))
			sb.WriteString("\nAnswer with /puzzle first,second,third,...")
		case "connection":
			sb.WriteString("Answer with /puzzle clue-clue,clue-clue,...")
		case "code":
			sb.WriteString("Ciphertext: " + prompt.Code)
			sb.WriteString("\nAnswer with /puzzle <decoded word>")
		}
		return narrativeMsg{text: sb.String()}
	}
}

func (m ConsoleUI) solvePuzzle(answer string) tea.Cmd {
	return func() tea.Msg {
		prompt, err := getPuzzlePrompt(m.client, m.config.APIBaseURL, m.gameState.CurrentScene)
		if err != nil {
			return narrativeMsg{err: err}
		}

		req := chat.PuzzleRequest{
			GameStateID: m.gameState.ID,
			SceneID:     m.gameState.CurrentScene,
		}
		switch prompt.Type {
		case "sequence":
			for _, part := range strings.Split(answer, ",") {
				req.Sequence = append(req.Sequence, normalizeClueID(part))
			}
		case "connection":
			for _, part := range strings.Split(answer, ",") {
				sides := strings.SplitN(part, "-", 2)
				if len(sides) != 2 {
					return narrativeMsg{err: fmt.Errorf("pairs look like clue-clue, got %q", part)}
				}
				req.Pairs = append(req.Pairs, [2]string{normalizeClueID(sides[0]), normalizeClueID(sides[1])})
			}
		case "code":
			req.Code = strings.TrimSpace(answer)
		}

		resp, err := attemptPuzzle(m.client, m.config.APIBaseURL, req)
		if err != nil {
			return narrativeMsg{err: err}
		}
		return narrativeMsg{text: resp.Message}
	}
}

func (m ConsoleUI) progression(playerContext string) tea.Cmd {
	return func() tea.Msg {
		resp, err := sendProgression(m.client, m.config.APIBaseURL, m.gameState.ID, playerContext)
		if err != nil {
			return narrativeMsg{err: err}
		}
		return narrativeMsg{text: resp.Narrative}
	}
}

func (m ConsoleUI) conclude(theory string) tea.Cmd {
	return func() tea.Msg {
		resp, err := sendConclusion(m.client, m.config.APIBaseURL, m.gameState.ID, theory)
		if err != nil {
			return narrativeMsg{err: err}
		}
		return narrativeMsg{text: resp.Narrative}
	}
}

func (m ConsoleUI) restart() tea.Cmd {
	return func() tea.Msg {
		gs, err := restartGame(m.client, m.config.APIBaseURL, m.gameState.ID)
		if err != nil {
			return narrativeMsg{err: err}
		}
		return gameStateMsg{gs, nil}
	}
}

func (m ConsoleUI) loadSceneNarrative(sceneID string) tea.Cmd {
	return func() tea.Msg {
		resp, err := getSceneNarrative(m.client, m.config.APIBaseURL, sceneID, m.gameState.ID)
		if err != nil {
			return narrativeMsg{err: err}
		}
		return narrativeMsg{text: resp.Narrative}
	}
}

func (m ConsoleUI) loadScenes() tea.Cmd {
	return func() tea.Msg {
		scenes, err := listScenes(m.client, m.config.APIBaseURL)
		return scenesLoadedMsg{scenes, err}
	}
}

func (m ConsoleUI) refreshGameState() tea.Cmd {
	return func() tea.Msg {
		gs, err := getGameState(m.client, m.config.APIBaseURL, m.gameState.ID)
		return gameStateMsg{gs, err}
	}
}

func (m ConsoleUI) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return sseEventMsg(<-m.eventChan)
	}
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			if m.cancelSSE != nil {
				m.cancelSSE()
			}
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				if m.cancelSSE != nil {
					m.cancelSSE()
				}
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Abandon the Case?"))
	content.WriteString("\n\n")
	content.WriteString("Your session is saved. You can resume it later with this session ID.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to keep investigating"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(chatWidth-4, 10))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}

// renderProgressBar creates an animated progress bar for loading states
func (m ConsoleUI) renderProgressBar() string {
	usable := m.chatViewport.Width - 6
	if usable <= 0 {
		usable = 30
	}
	if usable > 80 {
		usable = 80
	} else if usable < 10 {
		usable = 10
	}

	const totalFrames = 40
	frame := m.progressTick % totalFrames
	filled := (frame * usable) / totalFrames

	var bar strings.Builder
	for i := 0; i < usable; i++ {
		if i < filled {
			bar.WriteString("█")
		} else if i == filled && frame%4 < 2 {
			bar.WriteString("▓")
		} else {
			bar.WriteString("░")
		}
	}
	return separatorStyle.Render(bar.String())
}

// progressTick creates a command that sends a progress tick message
func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}
