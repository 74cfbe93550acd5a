package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gazette/internal/news"
	"github.com/five82/gazette/internal/prefs"
	"github.com/five82/gazette/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewFeed View = iota
	ViewDetail
)

// FeedFilter selects which articles the feed shows.
type FeedFilter int

const (
	FilterAll FeedFilter = iota
	FilterFavorites
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Repo         news.Repository
	Feed         *state.Loader[[]news.Article]
	RefreshEvery time.Duration // zero disables automatic refresh
	ThemeName    string
	FilterName   string
	PrefsPath    string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	repo         news.Repository
	feed         *state.Loader[[]news.Article]
	prefsPath    string
	refreshEvery time.Duration

	// UI state
	theme       Theme
	styles      Styles
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	feedSnap   state.Snapshot[[]news.Article]
	favorites  news.Favorites
	favUpdates <-chan news.Favorites
	toggleErr  error

	// Feed state
	selectedRow int
	filter      FeedFilter

	// Detail state
	detailID       string
	detail         *state.Loader[news.Article]
	detailSnap     state.Snapshot[news.Article]
	detailViewport viewport.Model

	// Overlays
	spinner      spinner.Model
	showHelp     bool
	showDrawer   bool
	drawerCursor int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	filter := FilterAll
	if opts.FilterName == "favorites" {
		filter = FilterFavorites
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = theme.Styles().AccentText

	m := Model{
		ctx:          ctx,
		repo:         opts.Repo,
		feed:         opts.Feed,
		prefsPath:    prefsPath,
		refreshEvery: opts.RefreshEvery,
		theme:        theme,
		styles:       theme.Styles(),
		currentView:  ViewFeed,
		filter:       filter,
		favorites:    make(news.Favorites),
		spinner:      sp,
	}
	if opts.Feed != nil {
		m.feedSnap = opts.Feed.Snapshot()
		// Init fires the first refresh immediately; reflect that up front.
		m.feedSnap.Loading = true
	}
	if opts.Repo != nil {
		m.favUpdates = opts.Repo.ObserveFavorites(ctx)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		m.spinner.Tick,
	}
	if m.feed != nil {
		cmds = append(cmds, refreshFeedCmd(m.ctx, m.feed))
	}
	if m.favUpdates != nil {
		cmds = append(cmds, watchFavoritesCmd(m.favUpdates))
	}
	if m.refreshEvery > 0 {
		cmds = append(cmds, tickCmd(m.refreshEvery))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, m.contentHeight())
			m.ready = true
		} else {
			m.detailViewport.Width = msg.Width
			m.detailViewport.Height = m.contentHeight()
		}
		m.syncDetailViewport()
		return m, nil

	case feedMsg:
		m.feedSnap = state.Snapshot[[]news.Article](msg)
		m.clampCursor()
		return m, nil

	case detailMsg:
		// A stale message for a previously opened article is dropped.
		if msg.id == m.detailID {
			m.detailSnap = msg.snap
			m.syncDetailViewport()
		}
		return m, nil

	case favoritesMsg:
		m.favorites = news.Favorites(msg)
		if m.filter == FilterFavorites {
			m.clampCursor()
		}
		m.syncDetailViewport()
		return m, watchFavoritesCmd(m.favUpdates)

	case favoritesClosedMsg:
		// Subscription context is gone; the program is shutting down.
		return m, nil

	case toggleFailedMsg:
		m.toggleErr = msg.err
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.feed != nil && !m.feedSnap.Loading {
			cmds = append(cmds, refreshFeedCmd(m.ctx, m.feed), m.markFeedLoading())
		}
		cmds = append(cmds, tickCmd(m.refreshEvery))
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if m.loading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showDrawer {
		return m.renderDrawer()
	}

	header := m.renderHeader()
	content := m.renderContent()
	status := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
}

func (m Model) renderContent() string {
	switch m.currentView {
	case ViewDetail:
		return m.renderDetail()
	default:
		return m.renderFeed()
	}
}

// contentHeight is the room left for the main pane after header and status bar.
func (m Model) contentHeight() int {
	h := m.height - 2
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) loading() bool {
	if m.feedSnap.Loading {
		return true
	}
	return m.currentView == ViewDetail && m.detailSnap.Loading
}

// visibleArticles applies the active filter to the loaded feed.
func (m Model) visibleArticles() []news.Article {
	if m.feedSnap.Data == nil {
		return nil
	}
	articles := *m.feedSnap.Data
	if m.filter != FilterFavorites {
		return articles
	}
	out := make([]news.Article, 0, len(articles))
	for _, a := range articles {
		if m.favorites.Has(a.ID) {
			out = append(out, a)
		}
	}
	return out
}

func (m *Model) clampCursor() {
	n := len(m.visibleArticles())
	if m.selectedRow >= n {
		m.selectedRow = n - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

func (m Model) selectedArticle() *news.Article {
	articles := m.visibleArticles()
	if len(articles) == 0 || m.selectedRow >= len(articles) {
		return nil
	}
	return &articles[m.selectedRow]
}

// markFeedLoading flips the local snapshot into its loading appearance
// immediately, without waiting for the refresh command to finish.
func (m *Model) markFeedLoading() tea.Cmd {
	m.feedSnap.Loading = true
	return m.spinner.Tick
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	filter := "all"
	if m.filter == FilterFavorites {
		filter = "favorites"
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Filter: filter}); err != nil {
		log.Printf("save prefs failed: %v", err)
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.showDrawer {
		return m.handleDrawerKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "tab":
		m.showDrawer = true
		m.drawerCursor = 0
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.spinner.Style = m.styles.AccentText
		m.savePrefs()
		m.syncDetailViewport()
		return m, nil

	case "f":
		if m.filter == FilterAll {
			m.filter = FilterFavorites
		} else {
			m.filter = FilterAll
		}
		m.selectedRow = 0
		m.savePrefs()
		return m, nil

	case "r":
		return m.handleRefresh()

	case "x":
		return m.handleDismissError()

	case " ":
		return m.handleToggleFavorite()

	case "esc":
		if m.currentView == ViewDetail {
			m.currentView = ViewFeed
		}
		return m, nil
	}

	switch m.currentView {
	case ViewFeed:
		return m.handleFeedKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m Model) handleFeedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	articles := m.visibleArticles()

	switch msg.String() {
	case "j", "down":
		if m.selectedRow < len(articles)-1 {
			m.selectedRow++
		}
	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "g", "home":
		m.selectedRow = 0
	case "G", "end":
		if len(articles) > 0 {
			m.selectedRow = len(articles) - 1
		}
	case "enter", "o":
		if a := m.selectedArticle(); a != nil {
			return m.openDetail(a.ID)
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "backspace", "h":
		m.currentView = ViewFeed
		return m, nil
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// openDetail binds a fresh loader to the chosen article and switches views.
func (m Model) openDetail(id string) (tea.Model, tea.Cmd) {
	repo := m.repo
	m.detailID = id
	m.detail = state.NewLoader(func(ctx context.Context) (news.Article, error) {
		return repo.ArticleByID(ctx, id)
	})
	m.detailSnap = m.detail.Snapshot()
	m.detailSnap.Loading = true
	m.currentView = ViewDetail
	m.detailViewport.GotoTop()
	m.syncDetailViewport()
	return m, tea.Batch(openArticleCmd(m.ctx, m.detail, id), m.spinner.Tick)
}

func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	switch m.currentView {
	case ViewDetail:
		if m.detail != nil && !m.detailSnap.Loading {
			m.detailSnap.Loading = true
			return m, tea.Batch(openArticleCmd(m.ctx, m.detail, m.detailID), m.spinner.Tick)
		}
	default:
		if m.feed != nil && !m.feedSnap.Loading {
			return m, tea.Batch(refreshFeedCmd(m.ctx, m.feed), m.markFeedLoading())
		}
	}
	return m, nil
}

func (m Model) handleDismissError() (tea.Model, tea.Cmd) {
	m.toggleErr = nil
	switch m.currentView {
	case ViewDetail:
		if m.detail != nil {
			m.detail.ClearError()
			m.detailSnap.Err = nil
			m.syncDetailViewport()
		}
	default:
		if m.feed != nil {
			m.feed.ClearError()
			m.feedSnap.Err = nil
		}
	}
	return m, nil
}

func (m Model) handleToggleFavorite() (tea.Model, tea.Cmd) {
	var id string
	switch m.currentView {
	case ViewDetail:
		id = m.detailID
	default:
		if a := m.selectedArticle(); a != nil {
			id = a.ID
		}
	}
	if id == "" {
		return m, nil
	}
	return m, toggleFavoriteCmd(m.ctx, m.repo, id)
}

// Messages

type feedMsg state.Snapshot[[]news.Article]

type detailMsg struct {
	id   string
	snap state.Snapshot[news.Article]
}

type favoritesMsg news.Favorites

type favoritesClosedMsg struct{}

type toggleFailedMsg struct{ err error }

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func refreshFeedCmd(ctx context.Context, feed *state.Loader[[]news.Article]) tea.Cmd {
	return func() tea.Msg {
		return feedMsg(feed.Refresh(ctx))
	}
}

func openArticleCmd(ctx context.Context, loader *state.Loader[news.Article], id string) tea.Cmd {
	return func() tea.Msg {
		return detailMsg{id: id, snap: loader.Refresh(ctx)}
	}
}

func watchFavoritesCmd(updates <-chan news.Favorites) tea.Cmd {
	return func() tea.Msg {
		favs, ok := <-updates
		if !ok {
			return favoritesClosedMsg{}
		}
		return favoritesMsg(favs)
	}
}

func toggleFavoriteCmd(ctx context.Context, repo news.Repository, id string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.ToggleFavorite(ctx, id); err != nil {
			return toggleFailedMsg{err: err}
		}
		return nil
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
