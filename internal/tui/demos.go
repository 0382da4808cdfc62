package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/sidebyside/internal/forms"
	"github.com/verte-zerg/sidebyside/internal/logging"
	"github.com/verte-zerg/sidebyside/internal/model"
	"github.com/verte-zerg/sidebyside/internal/posts"
	"github.com/verte-zerg/sidebyside/internal/state"
	"github.com/verte-zerg/sidebyside/internal/store"
)

// demo is the live panel of a section. A demo lives exactly as long as the
// section is shown.
type demo interface {
	Init() tea.Cmd
	// Update returns handled=false for keys the demo does not use.
	Update(msg tea.Msg) (handled bool, cmd tea.Cmd)
	// Capturing reports whether a text input owns the keyboard.
	Capturing() bool
	View(width int) string
	Help() string
	Close()
}

type demoDeps struct {
	todos    *state.TodoStore
	local    *store.Local
	fetcher  posts.Fetcher
	onChange func()
	log      *logging.Logger
	width    func() int
}

func newDemo(kind model.Demo, deps demoDeps) demo {
	switch kind {
	case model.DemoCounter:
		return newCounterDemo(deps)
	case model.DemoStopwatch:
		return newStopwatchDemo(deps)
	case model.DemoPrimes:
		return newPrimesDemo(deps)
	case model.DemoTodos:
		return newTodosDemo(deps)
	case model.DemoPassword:
		return newPasswordDemo(deps)
	case model.DemoPosts:
		return newPostsDemo(deps)
	case model.DemoStorage:
		return newStorageDemo(deps)
	case model.DemoRegistration:
		return newRegistrationDemo()
	default:
		return nil
	}
}

func keyString(msg tea.Msg) (string, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", false
	}
	return k.String(), true
}

type unsubscribers []func()

func (u unsubscribers) Close() {
	for _, fn := range u {
		fn()
	}
}

func subscribeTo(onChange func(), subs ...interface{ Subscribe(func()) func() }) unsubscribers {
	var out unsubscribers
	if onChange == nil {
		return out
	}
	for _, s := range subs {
		out = append(out, s.Subscribe(onChange))
	}
	return out
}

type counterDemo struct {
	counter *state.Counter
	unsub   unsubscribers
}

func newCounterDemo(deps demoDeps) *counterDemo {
	c := state.NewCounter()
	return &counterDemo{counter: c, unsub: subscribeTo(deps.onChange, c)}
}

func (d *counterDemo) Init() tea.Cmd   { return nil }
func (d *counterDemo) Capturing() bool { return false }
func (d *counterDemo) Close()          { d.unsub.Close() }
func (d *counterDemo) Help() string    { return "+/-: change · 0: reset · n: rename" }

func (d *counterDemo) Update(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := keyString(msg)
	if !ok {
		return false, nil
	}
	switch key {
	case "+", "=":
		d.counter.Increment()
	case "-", "_":
		d.counter.Decrement()
	case "0":
		d.counter.Reset()
	case "n":
		d.counter.SetName(otherFramework(d.counter.Name()))
	default:
		return false, nil
	}
	return true, nil
}

func otherFramework(name string) string {
	if name == "React" {
		return "Angular"
	}
	return "React"
}

func (d *counterDemo) View(int) string {
	parity := "odd"
	if d.counter.IsEven() {
		parity = "even"
	}
	return fmt.Sprintf("Count: %d   Double: %d   (%s)\n%s",
		d.counter.Count(), d.counter.Double(), parity, subtitleStyle.Render(d.counter.Greeting()))
}

type stopwatchTickMsg struct {
	gen uint64
}

type stopwatchDemo struct {
	watch *state.Stopwatch
	width func() int
	unsub unsubscribers
}

func newStopwatchDemo(deps demoDeps) *stopwatchDemo {
	w := state.NewStopwatch()
	return &stopwatchDemo{watch: w, width: deps.width, unsub: subscribeTo(deps.onChange, w)}
}

func stopwatchTick(gen uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return stopwatchTickMsg{gen: gen}
	})
}

func (d *stopwatchDemo) Init() tea.Cmd   { return nil }
func (d *stopwatchDemo) Capturing() bool { return false }
func (d *stopwatchDemo) Help() string    { return "space: start/stop · r: reset" }

// Close stops the watch so any tick already scheduled is ignored.
func (d *stopwatchDemo) Close() {
	d.watch.Stop()
	d.unsub.Close()
}

func (d *stopwatchDemo) Update(msg tea.Msg) (bool, tea.Cmd) {
	if tick, ok := msg.(stopwatchTickMsg); ok {
		if d.watch.Tick(tick.gen) {
			return true, stopwatchTick(tick.gen)
		}
		return true, nil
	}
	key, ok := keyString(msg)
	if !ok {
		return false, nil
	}
	switch key {
	case " ", "space":
		if d.watch.Running() {
			d.watch.Stop()
			return true, nil
		}
		return true, stopwatchTick(d.watch.Start())
	case "r":
		d.watch.Reset()
		return true, nil
	}
	return false, nil
}

func (d *stopwatchDemo) View(int) string {
	secs := d.watch.Seconds()
	status := "paused"
	if d.watch.Running() {
		status = "running"
	}
	line := fmt.Sprintf("⏱  %02d:%02d  %s", secs/60, secs%60, subtitleStyle.Render(status))
	if d.width != nil {
		line += "\n" + subtitleStyle.Render(fmt.Sprintf("terminal width: %d columns", d.width()))
	}
	return line
}

type primesDemo struct {
	filter *state.PrimeFilter
	unsub  unsubscribers
}

func newPrimesDemo(deps demoDeps) *primesDemo {
	f := state.NewPrimeFilter()
	return &primesDemo{filter: f, unsub: subscribeTo(deps.onChange, f)}
}

func (d *primesDemo) Init() tea.Cmd   { return nil }
func (d *primesDemo) Capturing() bool { return false }
func (d *primesDemo) Close()          { d.unsub.Close() }
func (d *primesDemo) Help() string    { return "p: primes only · m: raise max" }

func (d *primesDemo) Update(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := keyString(msg)
	if !ok {
		return false, nil
	}
	switch key {
	case "p":
		d.filter.TogglePrimes()
	case "m":
		d.filter.IncreaseMax()
	default:
		return false, nil
	}
	return true, nil
}

func (d *primesDemo) View(width int) string {
	nums := d.filter.Numbers()
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	mode := "all numbers"
	if d.filter.OnlyPrimes() {
		mode = "primes only"
	}
	header := fmt.Sprintf("1..%d, %s (%d shown)", d.filter.Max(), mode, len(nums))
	body := lipgloss.NewStyle().Width(max(width, 10)).Render(strings.Join(parts, " "))
	return header + "\n" + subtitleStyle.Render(body)
}

type todosDemo struct {
	todos  *state.TodoStore
	input  textinput.Model
	adding bool
	cursor int
	bar    progress.Model
	unsub  unsubscribers
}

func newTodosDemo(deps demoDeps) *todosDemo {
	in := textinput.New()
	in.Placeholder = "What needs doing?"
	in.Prompt = "+ "
	in.CharLimit = 200
	bar := progress.New(progress.WithSolidFill("#22c55e"), progress.WithoutPercentage())
	return &todosDemo{todos: deps.todos, input: in, bar: bar, unsub: subscribeTo(deps.onChange, deps.todos)}
}

func (d *todosDemo) Init() tea.Cmd   { return nil }
func (d *todosDemo) Capturing() bool { return d.adding }
func (d *todosDemo) Close()          { d.unsub.Close() }
func (d *todosDemo) Help() string {
	return "a: add · n/p: select · x: toggle · d: delete · C: clear completed"
}

func (d *todosDemo) selected() (model.TodoItem, bool) {
	items := d.todos.Items()
	if len(items) == 0 {
		return model.TodoItem{}, false
	}
	d.cursor = max(0, min(d.cursor, len(items)-1))
	return items[d.cursor], true
}

func (d *todosDemo) Update(msg tea.Msg) (bool, tea.Cmd) {
	key, isKey := keyString(msg)
	if d.adding {
		if !isKey {
			var cmd tea.Cmd
			d.input, cmd = d.input.Update(msg)
			return true, cmd
		}
		switch key {
		case "esc":
			d.adding = false
			d.input.Blur()
			d.input.Reset()
		case "enter":
			if d.todos.Add(d.input.Value()) {
				d.cursor = d.todos.TotalCount() - 1
			}
			d.input.Reset()
		default:
			var cmd tea.Cmd
			d.input, cmd = d.input.Update(msg)
			return true, cmd
		}
		return true, nil
	}
	if !isKey {
		return false, nil
	}
	switch key {
	case "a":
		d.adding = true
		return true, d.input.Focus()
	case "n":
		d.cursor++
		d.selected()
	case "p":
		d.cursor--
		d.selected()
	case "x":
		if item, ok := d.selected(); ok {
			d.todos.Toggle(item.ID)
		}
	case "d":
		if item, ok := d.selected(); ok {
			d.todos.Remove(item.ID)
		}
	case "C":
		d.todos.ClearCompleted()
	default:
		return false, nil
	}
	return true, nil
}

func (d *todosDemo) View(width int) string {
	var b strings.Builder
	items := d.todos.Items()
	if len(items) == 0 {
		b.WriteString(subtitleStyle.Render("Nothing to do."))
		b.WriteRune('\n')
	}
	d.selected()
	for i, item := range items {
		mark := "[ ]"
		text := item.Text
		if item.Done {
			mark = "[x]"
			text = subtitleStyle.Strikethrough(true).Render(text)
		}
		cursor := "  "
		if i == d.cursor {
			cursor = navActiveStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, mark, text)
	}
	d.bar.Width = max(10, min(width-20, 40))
	fmt.Fprintf(&b, "%s %d/%d done (%d%%)",
		d.bar.ViewAs(float64(d.todos.Progress())/100), d.todos.CompletedCount(), d.todos.TotalCount(), d.todos.Progress())
	if d.adding {
		b.WriteString("\n" + d.input.View())
	}
	return b.String()
}

// passwordDemo pairs the strength meter with a schema form whose password
// field follows the tester.
type passwordDemo struct {
	strength      *state.PasswordStrength
	input         textinput.Model
	editing       bool
	schema        *fieldForm
	schemaEditing bool
	result        string
	unsub         unsubscribers
}

func newPasswordDemo(deps demoDeps) *passwordDemo {
	in := textinput.New()
	in.Placeholder = "type a password"
	in.Prompt = "Password  "
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	in.CharLimit = 128
	s := state.NewPasswordStrength()
	return &passwordDemo{strength: s, input: in, schema: newSchemaForm(), unsub: subscribeTo(deps.onChange, s)}
}

func newSchemaForm() *fieldForm {
	return newFieldForm(
		func(f *fieldForm) forms.FieldErrors { return forms.Validate(schemaValues(f)) },
		textField("email", "Email", "you@example.com"),
		secretField("password", "Password", "filled from the tester"),
		numberField("age", "Age", "18+"),
	)
}

func schemaValues(f *fieldForm) forms.Schema {
	return forms.Schema{
		Email:    strings.TrimSpace(f.Value("email")),
		Password: f.Value("password"),
		Age:      f.Int("age"),
	}
}

func (d *passwordDemo) Init() tea.Cmd   { return nil }
func (d *passwordDemo) Capturing() bool { return d.editing || d.schemaEditing }
func (d *passwordDemo) Close()          { d.unsub.Close() }
func (d *passwordDemo) Help() string {
	switch {
	case d.editing:
		return "esc: done"
	case d.schemaEditing:
		return "tab: next field · enter on last field: validate · esc: done"
	}
	return "e: edit password · s: edit schema form"
}

func (d *passwordDemo) Update(msg tea.Msg) (bool, tea.Cmd) {
	key, isKey := keyString(msg)
	if d.schemaEditing {
		return true, d.updateSchema(msg, key, isKey)
	}
	if !d.editing {
		switch {
		case isKey && key == "e":
			d.editing = true
			return true, d.input.Focus()
		case isKey && key == "s":
			d.schemaEditing = true
			return true, d.schema.Focus()
		}
		return false, nil
	}
	if isKey && (key == "esc" || key == "enter") {
		d.editing = false
		d.input.Blur()
		return true, nil
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	if v := d.input.Value(); v != d.strength.Candidate() {
		d.strength.Update(v)
		d.schema.SetValue("password", v)
		d.result = ""
	}
	return true, cmd
}

func (d *passwordDemo) updateSchema(msg tea.Msg, key string, isKey bool) tea.Cmd {
	if isKey && key == "esc" {
		d.schemaEditing = false
		d.schema.Blur()
		return nil
	}
	submit, cmd := d.schema.Update(msg)
	if submit {
		d.result = ""
		if d.schema.Validate() {
			d.result = "Valid. Schema accepted " + schemaValues(d.schema).Email
		}
	}
	return cmd
}

func (d *passwordDemo) View(int) string {
	score := d.strength.Score()
	level := d.strength.Level()
	color := lipgloss.Color(level.Color)
	var bar strings.Builder
	for i := 0; i < state.MaxScore; i++ {
		if i < score {
			bar.WriteString(lipgloss.NewStyle().Foreground(color).Render("█"))
		} else {
			bar.WriteString(hintStyle.Render("░"))
		}
	}
	checks := d.strength.Checks()
	rule := func(ok bool, label string) string {
		if ok {
			return copiedStyle.Render("✓ " + label)
		}
		return hintStyle.Render("✗ " + label)
	}
	lines := []string{
		d.input.View(),
		fmt.Sprintf("%s  %s (%d/%d)", bar.String(), lipgloss.NewStyle().Foreground(color).Bold(true).Render(level.Label), score, state.MaxScore),
		strings.Join([]string{
			rule(checks.Length, fmt.Sprintf("%d+ chars", state.MinPasswordLength)),
			rule(checks.Upper, "upper"),
			rule(checks.Lower, "lower"),
			rule(checks.Digit, "digit"),
			rule(checks.Special, "symbol"),
		}, "  "),
		"",
		subtitleStyle.Render("Schema form"),
		d.schema.View(),
	}
	if d.result != "" {
		lines = append(lines, copiedStyle.Render(d.result))
	}
	return strings.Join(lines, "\n")
}

type postsListMsg struct {
	state posts.FetchState[[]model.Post]
}

// postOneMsg carries the id it was requested for so a slow reply for an
// earlier selection is dropped.
type postOneMsg struct {
	id    int
	state posts.FetchState[model.Post]
}

type postsDemo struct {
	fetcher posts.Fetcher
	list    posts.FetchState[[]model.Post]
	one     posts.FetchState[model.Post]
	postID  int
	spinner spinner.Model
}

func newPostsDemo(deps demoDeps) *postsDemo {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &postsDemo{fetcher: deps.fetcher, postID: posts.MinPostID, spinner: s}
}

func (d *postsDemo) Capturing() bool { return false }
func (d *postsDemo) Close()          {}
func (d *postsDemo) Help() string    { return "r: reload · n/p: next/prev post" }

func (d *postsDemo) Init() tea.Cmd {
	return tea.Batch(d.fetchList(), d.fetchOne(d.postID))
}

func (d *postsDemo) fetchList() tea.Cmd {
	if d.fetcher == nil {
		return nil
	}
	d.list = posts.Loading[[]model.Post]()
	fetcher := d.fetcher
	return tea.Batch(d.spinner.Tick, func() tea.Msg {
		return postsListMsg{state: posts.FetchList(context.Background(), fetcher, posts.DefaultLimit)}
	})
}

func (d *postsDemo) fetchOne(id int) tea.Cmd {
	if d.fetcher == nil {
		return nil
	}
	d.postID = posts.ClampPostID(id)
	d.one = posts.Loading[model.Post]()
	fetcher, postID := d.fetcher, d.postID
	return tea.Batch(d.spinner.Tick, func() tea.Msg {
		return postOneMsg{id: postID, state: posts.FetchOne(context.Background(), fetcher, postID)}
	})
}

func (d *postsDemo) loading() bool {
	return d.list.Loading || d.one.Loading
}

func (d *postsDemo) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case postsListMsg:
		d.list = msg.state
		return true, nil
	case postOneMsg:
		if msg.id == d.postID {
			d.one = msg.state
		}
		return true, nil
	case spinner.TickMsg:
		if !d.loading() {
			return true, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return true, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return true, d.fetchList()
		case "n":
			return true, d.fetchOne(d.postID + 1)
		case "p":
			return true, d.fetchOne(d.postID - 1)
		}
	}
	return false, nil
}

func (d *postsDemo) View(width int) string {
	if d.fetcher == nil {
		return subtitleStyle.Render("No HTTP client configured.")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Latest posts"))
	b.WriteRune('\n')
	switch {
	case d.list.Loading:
		b.WriteString(d.spinner.View() + " Loading...")
	case d.list.Error != "":
		b.WriteString(errorStyle.Render("Error: " + d.list.Error))
	default:
		for _, p := range d.list.Data {
			b.WriteString(truncate(fmt.Sprintf("%3d  %s", p.ID, p.Title), width))
			b.WriteRune('\n')
		}
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Post #%d", d.postID)))
	b.WriteRune('\n')
	switch {
	case d.one.Loading:
		b.WriteString(d.spinner.View() + " Loading...")
	case d.one.Error != "":
		b.WriteString(errorStyle.Render("Error: " + d.one.Error))
	default:
		b.WriteString(d.one.Data.Title)
		b.WriteRune('\n')
		b.WriteString(subtitleStyle.Width(max(width, 10)).Render(d.one.Data.Body))
	}
	return strings.TrimRight(b.String(), "\n")
}

type storageDemo struct {
	local  *store.Local
	log    *logging.Logger
	items  []model.StorageItem
	err    string
	input  textinput.Model
	adding bool
	cursor int
}

func newStorageDemo(deps demoDeps) *storageDemo {
	in := textinput.New()
	in.Placeholder = "key=value"
	in.Prompt = "set "
	in.CharLimit = 200
	return &storageDemo{local: deps.local, log: deps.log, input: in}
}

func (d *storageDemo) Capturing() bool { return d.adding }
func (d *storageDemo) Close()          {}
func (d *storageDemo) Help() string {
	return "a: set key=value · n/p: select · d: remove"
}

func (d *storageDemo) Init() tea.Cmd {
	d.reload()
	return nil
}

func (d *storageDemo) reload() {
	items, err := d.local.DemoItems(context.Background())
	if err != nil {
		d.log.Error(err, "load demo storage")
		d.err = err.Error()
		return
	}
	d.err = ""
	d.items = items
	d.cursor = max(0, min(d.cursor, len(items)-1))
}

func (d *storageDemo) Update(msg tea.Msg) (bool, tea.Cmd) {
	key, isKey := keyString(msg)
	if d.adding {
		switch {
		case isKey && key == "esc":
			d.adding = false
			d.input.Blur()
			d.input.Reset()
		case isKey && key == "enter":
			k, v, _ := strings.Cut(d.input.Value(), "=")
			if err := d.local.SetDemo(context.Background(), k, strings.TrimSpace(v)); err != nil {
				d.log.Error(err, "set demo storage")
				d.err = err.Error()
			}
			d.input.Reset()
			d.reload()
		default:
			var cmd tea.Cmd
			d.input, cmd = d.input.Update(msg)
			return true, cmd
		}
		return true, nil
	}
	if !isKey {
		return false, nil
	}
	switch key {
	case "a":
		d.adding = true
		return true, d.input.Focus()
	case "n":
		d.cursor = min(d.cursor+1, max(len(d.items)-1, 0))
	case "p":
		d.cursor = max(d.cursor-1, 0)
	case "d":
		if len(d.items) > 0 {
			if err := d.local.RemoveDemo(context.Background(), d.items[d.cursor].Key); err != nil {
				d.log.Error(err, "remove demo storage")
				d.err = err.Error()
			}
			d.reload()
		}
	default:
		return false, nil
	}
	return true, nil
}

func (d *storageDemo) View(width int) string {
	if !d.local.Enabled() {
		return subtitleStyle.Render("Storage is unavailable in a non-interactive session.")
	}
	var b strings.Builder
	if len(d.items) == 0 {
		b.WriteString(subtitleStyle.Render("No entries under " + store.DemoPrefix + "*"))
		b.WriteRune('\n')
	}
	for i, item := range d.items {
		cursor := "  "
		if i == d.cursor {
			cursor = navActiveStyle.Render("> ")
		}
		b.WriteString(cursor + truncate(fmt.Sprintf("%s = %s", item.Key, item.Value), width-2))
		b.WriteRune('\n')
	}
	if d.err != "" {
		b.WriteString(errorStyle.Render(d.err))
		b.WriteRune('\n')
	}
	if d.adding {
		b.WriteString(d.input.View())
	}
	return strings.TrimRight(b.String(), "\n")
}

// registrationDemo is the reactive registration form. A valid submit shows
// the data that would be sent.
type registrationDemo struct {
	form      *fieldForm
	editing   bool
	submitted *forms.RegistrationData
}

func newRegistrationDemo() *registrationDemo {
	return &registrationDemo{form: newFieldForm(
		func(f *fieldForm) forms.FieldErrors { return forms.Validate(registrationValues(f)) },
		textField("name", "Name", "at least 2 characters"),
		textField("email", "Email", "you@example.com"),
		numberField("age", "Age", "18-120"),
		secretField("password", "Password", "8+ chars, upper case and digit"),
		secretField("confirmpassword", "Confirm password", "repeat the password"),
		choiceField("role", "Role", "user", "admin"),
		checkField("terms", "Accept terms"),
	)}
}

func registrationValues(f *fieldForm) forms.Registration {
	r := forms.NewRegistration()
	r.Name = strings.TrimSpace(f.Value("name"))
	r.Email = strings.TrimSpace(f.Value("email"))
	r.Age = f.Int("age")
	r.Password = f.Value("password")
	r.ConfirmPassword = f.Value("confirmpassword")
	r.Role = f.Value("role")
	r.Terms = f.Checked("terms")
	return r
}

func (d *registrationDemo) Init() tea.Cmd   { return nil }
func (d *registrationDemo) Capturing() bool { return d.editing }
func (d *registrationDemo) Close()          {}
func (d *registrationDemo) Help() string {
	if d.editing {
		return "tab: next field · space: toggle · enter on last field: submit · esc: done"
	}
	return "e: edit form · R: reset"
}

func (d *registrationDemo) Update(msg tea.Msg) (bool, tea.Cmd) {
	key, isKey := keyString(msg)
	if !d.editing {
		switch {
		case isKey && key == "e":
			d.editing = true
			return true, d.form.Focus()
		case isKey && key == "R":
			d.form.Reset()
			d.submitted = nil
			return true, nil
		}
		return false, nil
	}
	if isKey && key == "esc" {
		d.editing = false
		d.form.Blur()
		return true, nil
	}
	submit, cmd := d.form.Update(msg)
	if submit && d.form.Validate() {
		data := registrationValues(d.form).Data()
		d.submitted = &data
		d.editing = false
		d.form.Blur()
	}
	return true, cmd
}

func (d *registrationDemo) View(int) string {
	out := d.form.View()
	if d.submitted == nil {
		return out
	}
	data := d.submitted
	lines := []string{
		copiedStyle.Render("Submitted"),
		fmt.Sprintf("name: %s", data.Name),
		fmt.Sprintf("email: %s", data.Email),
		fmt.Sprintf("age: %d", data.Age),
		fmt.Sprintf("password: %s", strings.Repeat("•", len([]rune(data.Password)))),
		fmt.Sprintf("role: %s", data.Role),
		fmt.Sprintf("terms: %t", data.Terms),
	}
	return out + "\n\n" + strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
