package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"reactorbay/pkg/engine/input"
	"reactorbay/pkg/engine/terminal"
	"reactorbay/pkg/engine/world"
	"reactorbay/pkg/game/entities"
	"reactorbay/pkg/game/presentation"
	"reactorbay/pkg/game/recycler"
	"reactorbay/pkg/game/renderer"
	"reactorbay/pkg/game/state"
)

// Gauge widths
const (
	BarWidth   = 20
	SlotWidth  = 12
	CueHistory = 3
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorDevice      color.Style
	colorItem        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorWarning     color.Style
	colorExamine     color.Style
	colorSubtle      color.Style
	colorPowered     color.Style
	colorDamaged     color.Style

	regexpStringFunctions *regexp.Regexp

	out         io.Writer
	in          *input.Reader
	interactive bool
}

// New creates a TUI renderer on stdin and stdout
func New() *TUIRenderer {
	return NewWithIO(os.Stdin, os.Stdout, terminal.Interactive())
}

// NewWithIO creates a TUI renderer reading commands from in and drawing to out
func NewWithIO(in io.Reader, out io.Writer, interactive bool) *TUIRenderer {
	device := input.DeviceScript
	if interactive {
		device = input.DeviceTerminal
	}
	return &TUIRenderer{
		out:         out,
		in:          input.NewReader(in, device),
		interactive: interactive,
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorDevice = color.Style{color.FgCyan, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorWarning = color.Style{color.FgYellow, color.OpBold}
	t.colorExamine = color.Style{color.FgBlue}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPowered = color.Style{color.FgGreen}
	t.colorDamaged = color.Style{color.FgRed}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:.'%?-]+)}`)
}

// Clear clears the terminal screen. Scripted sessions keep their scrollback.
func (t *TUIRenderer) Clear() {
	if !t.interactive {
		return
	}
	c := exec.Command("clear")
	c.Stdout = t.out
	c.Run()
}

// GetInput reads the next command line and returns a high-level Intent.
func (t *TUIRenderer) GetInput() (input.Intent, error) {
	return t.in.ReadIntent()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleDevice:
		return t.colorDevice.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleWarning:
		return t.colorWarning.Sprint(text)
	case renderer.StyleExamine:
		return t.colorExamine.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePowered:
		return t.colorPowered.Sprint(text)
	case renderer.StyleDamaged:
		return t.colorDamaged.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		val := "blat"

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.colorItem.Sprint(operand)
		case "DEVICE":
			val = t.colorDevice.Sprint(dynamicGet(operand))
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		case "WARN":
			val = t.colorWarning.Sprint(operand)
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage prints a line outside the frame
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame renders the bay: both devices, the player's hands, the power
// balance, recent sounds and the message log
func (t *TUIRenderer) RenderFrame(b *state.Bay) {
	elapsed := time.Duration(0)
	if b.Scheduler != nil {
		elapsed = b.Scheduler.Now()
	}
	fmt.Fprintf(t.out, "%s  %s\n\n", t.colorAction.Sprint(gotext.Get("Engineering Bay")), t.colorSubtle.Sprint(formatElapsed(elapsed)))

	if b.Generator != nil {
		t.printGenerator(b)
	}
	if b.Recycler != nil {
		t.printRecycler(b.Recycler)
	}
	t.printPowerBalance(b)
	t.printStatusBar(b)
	t.printCues(b.Cues)
	t.printPossibleActions()
	t.printMessagesPane(b)

	if t.interactive {
		fmt.Fprint(t.out, "\n> ")
	}
}

func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

func (t *TUIRenderer) printBullet(txt string) {
	fmt.Fprint(t.out, "- "+t.FormatText("%s", txt)+"\n")
}

func formatElapsed(d time.Duration) string {
	d = d.Truncate(100 * time.Millisecond)
	minutes := int(d / time.Minute)
	seconds := (d % time.Minute).Seconds()
	return fmt.Sprintf("T+%02d:%04.1f", minutes, seconds)
}

func (t *TUIRenderer) printGenerator(b *state.Bay) {
	g := b.Generator
	s := g.State()

	t.printString("DEVICE{%s} ", g.Name)
	fmt.Fprintf(t.out, "%s %s  %s\n",
		t.StyleText(renderer.GeneratorIcon(s), renderer.GeneratorStyle(s)),
		t.StyleText(renderer.StateLabel(s), renderer.GeneratorStyle(s)),
		renderer.FormatPowerWatts(g.ProducingWatts(), false))

	if g.Profile.UsesCells() {
		if cell := g.Cell(); cell != nil {
			glyph := ""
			if b.GeneratorView != nil {
				glyph = renderer.CellGlyph(b.GeneratorView.CellSprite()) + " "
			}
			fmt.Fprintf(t.out, "  %-10s %s%s %6.2f%%\n", gotext.Get("Fuel"), glyph, renderer.Bar(cell.FuelPercent()/100, BarWidth), cell.FuelPercent())
		} else {
			fmt.Fprintf(t.out, "  %-10s %s\n", gotext.Get("Fuel"), t.colorDenied.Sprint(gotext.Get("no cell")))
		}
	} else {
		fmt.Fprintf(t.out, "  %-10s %s %6.2f%%\n", gotext.Get("Output"), renderer.Bar(g.PowerGenPercent()/100, BarWidth), g.PowerGenPercent())
	}

	integrity := g.Integrity()
	fmt.Fprintf(t.out, "  %-10s %s %6.2f%%\n", gotext.Get("Integrity"), t.StyleText(renderer.Bar(integrity.Percent(), BarWidth), renderer.GeneratorStyle(s)), integrity.Percent()*100)

	if b.GeneratorView != nil {
		fmt.Fprintf(t.out, "  %-10s %+.3f\n", gotext.Get("Bar"), b.GeneratorView.BarOffset())
	}
	if g.Repairing() {
		fmt.Fprintln(t.out, "  "+t.colorWarning.Sprint(gotext.Get("Repair in progress...")))
	}
	fmt.Fprintln(t.out)
}

func (t *TUIRenderer) printRecycler(r *recycler.Recycler) {
	body, left, right := presentation.RecyclerSprites(r)
	t.printString("DEVICE{%s} ", r.Name)
	if body == presentation.RecyclerLoaded {
		fmt.Fprint(t.out, t.colorSubtle.Sprint(gotext.Get("(loaded) ")))
	}
	if r.Powered() {
		fmt.Fprintf(t.out, "%s  %s\n", t.colorPowered.Sprint(gotext.Get("POWERED")), renderer.FormatPowerWatts(r.WattUsage(), false))
	} else {
		fmt.Fprintln(t.out, t.colorDenied.Sprint(gotext.Get("NO POWER")))
	}

	for i, slot := range []*recycler.Slot{r.Left, r.Right} {
		sprite := left
		if i == 1 {
			sprite = right
		}
		icon := renderer.IconSlotEmpty
		if sprite != presentation.RecyclerNoCell {
			icon = renderer.IconSlotFull
		}
		light := t.StyleText(fmt.Sprintf("%s %-8s", icon, gotext.Get(slot.Indicator.String())), renderer.IndicatorStyle(slot.Indicator))
		fmt.Fprintf(t.out, "  %-10s %s", strings.ToUpper(slot.Name[:1])+slot.Name[1:], light)
		if cell := slot.Cell(); cell != nil {
			glyph := renderer.CellGlyph(cell.SpriteVariant(presentation.CellSpriteVariants))
			fmt.Fprintf(t.out, " %s %s %6.2f%%", glyph, renderer.Bar(cell.FuelPercent()/100, SlotWidth), cell.FuelPercent())
		}
		fmt.Fprintln(t.out)
	}
	fmt.Fprintln(t.out)
}

func (t *TUIRenderer) printPowerBalance(b *state.Bay) {
	supply, draw := b.PowerBalance()
	net := supply - draw
	netText := renderer.FormatPowerWatts(net, true)
	if net < 0 {
		netText = t.colorDenied.Sprint(netText)
	} else {
		netText = t.colorPowered.Sprint(netText)
	}
	fmt.Fprintf(t.out, "%s %s  %s %s  %s %s\n",
		t.colorSubtle.Sprint(gotext.Get("Supply:")), renderer.FormatPowerWatts(supply, true),
		t.colorSubtle.Sprint(gotext.Get("Draw:")), renderer.FormatPowerWatts(draw, true),
		t.colorSubtle.Sprint(gotext.Get("Net:")), netText)
}

// printStatusBar renders what the player holds and carries
func (t *TUIRenderer) printStatusBar(b *state.Bay) {
	fmt.Fprintln(t.out)

	fmt.Fprint(t.out, t.colorSubtle.Sprint(gotext.Get("Hand: ")))
	if held := b.Hand.Item(); held != nil {
		fmt.Fprint(t.out, t.colorItem.Sprint(held.Name))
		if w, ok := world.Component[*entities.Welder](held); ok {
			fmt.Fprintf(t.out, " %s %s", t.colorWarning.Sprint(renderer.WelderGlyph(w)), t.colorSubtle.Sprint(gotext.Get("fuel %.2f", w.Fuel)))
		}
		fmt.Fprintln(t.out)
	} else {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("(empty)")))
	}

	t.printItemSet(gotext.Get("Belt: "), b.Belt)
	t.printItemSet(gotext.Get("Floor: "), b.Floor)
}

func (t *TUIRenderer) printItemSet(label string, set world.ItemSet) {
	fmt.Fprint(t.out, t.colorSubtle.Sprint(label))
	if set.Size() == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("(empty)")))
		return
	}
	items := []string{}
	for _, item := range state.SortedItems(set) {
		items = append(items, t.colorItem.Sprint(item.Name))
	}
	fmt.Fprintln(t.out, strings.Join(items, t.colorSubtle.Sprint(", ")))
}

func (t *TUIRenderer) printCues(cues *presentation.CueLog) {
	if cues == nil {
		return
	}
	recent := cues.Recent(CueHistory)
	if len(recent) == 0 {
		return
	}
	parts := []string{}
	for _, c := range recent {
		switch {
		case c.Stop:
			parts = append(parts, t.colorSubtle.Sprintf("%s %s %s", renderer.IconSound, c.Sound, gotext.Get("stopped")))
		case c.Loop != uuid.Nil:
			parts = append(parts, t.colorAction.Sprintf("%s %s %s", renderer.IconSound, c.Sound, gotext.Get("looping")))
		default:
			parts = append(parts, t.colorAction.Sprintf("%s %s", renderer.IconSound, c.Sound))
		}
	}
	playing := t.colorSubtle.Sprintf(" (%d %s)", len(cues.Playing()), gotext.Get("playing"))
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("Sound: "))+strings.Join(parts, t.colorSubtle.Sprint(", "))+playing)
}

// printPossibleActions prints the available actions
func (t *TUIRenderer) printPossibleActions() {
	fmt.Fprintln(t.out)
	t.printBullet("ACTION{use} / ACTION{hold} item / ACTION{stow} / ACTION{light} / ACTION{examine} target")
	t.printBullet("ACTION{insert} left|right / ACTION{eject} left|right / ACTION{damage} n / ACTION{wait} seconds")
	t.printBullet("ACTION{status} / ACTION{bindings} / ACTION{?} hint / ACTION{quit}")
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(b *state.Bay) {
	width := terminal.GetWidth()

	label := " " + gotext.Get("Messages") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(1, width-sideLen-labelLen))

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(b.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+gotext.Get("(no messages)")))
	} else {
		for _, msg := range b.Messages {
			fmt.Fprintf(t.out, "  %s\n", t.styleMessage(msg))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

func (t *TUIRenderer) styleMessage(msg state.Message) string {
	switch msg.Kind {
	case state.MessageWarning:
		return t.colorWarning.Sprint(msg.Text)
	case state.MessageExamine:
		return t.colorExamine.Sprint(msg.Text)
	case state.MessageAction:
		return t.colorAction.Sprint(msg.Text)
	default:
		return t.FormatText("%s", msg.Text)
	}
}
