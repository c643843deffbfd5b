package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/joe/savswap/internal/config"
	"github.com/joe/savswap/internal/navigator"
	"github.com/joe/savswap/internal/transfer"
	"github.com/joe/savswap/pkg/gateway"
	"github.com/joe/savswap/pkg/listing"
)

const (
	devicePath = "/sdcard/saves/"
	hostPath   = `C:\saves\`
)

// press sends a single key through Update and returns the resulting command.
func press(m *Model, keyType tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

// submit types line, presses Enter and runs the command chain synchronously
// until it settles, returning the last message produced.
func submit(m *Model, line string) tea.Msg {
	for _, r := range line {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	cmd := press(m, tea.KeyEnter)

	var last tea.Msg
	for cmd != nil {
		last = cmd()

		switch last.(type) {
		case listingMsg, transferMsg:
			_, cmd = m.Update(last)
		default:
			cmd = nil
		}
	}

	return last
}

var _ = Describe("Model", func() {
	var (
		runner *gateway.MockRunner
		model  *Model
		filter *listing.Filter
	)

	hostListCmd := "ls -n '" + hostPath + "'"

	build := func() {
		bridge := gateway.NewBridge(runner, "adb", []string{"powershell.exe"})
		paths := config.Paths{DevicePath: devicePath, HostPath: hostPath}

		model = NewModel(context.Background(), Options{
			Lister:     bridge,
			Transferer: transfer.NewInvoker(bridge, paths, zerolog.Nop()),
			Paths:      paths,
			Filter:     filter,
			Logger:     zerolog.Nop(),
		})
	}

	BeforeEach(func() {
		filter = nil
		runner = gateway.NewMockRunner().
			On(gateway.Result{Stdout: []byte("x.sav\ny.sav\n"), Success: true}, "adb", "shell", "ls").
			On(gateway.Result{Stdout: []byte("a.sav\r\nb.sav\r\n"), Success: true}, "powershell.exe")
		build()
	})

	Describe("Direction menu", func() {
		It("starts at the direction menu", func() {
			Expect(model.State()).To(Equal(navigator.Initial()))

			view := model.View()
			Expect(view).To(ContainSubstring("Select Source -> Destination."))
			Expect(view).To(ContainSubstring("[1] Phone -> PC"))
			Expect(view).To(ContainSubstring("[2] PC -> Phone"))
			Expect(view).To(ContainSubstring("[0] Exit"))
			Expect(view).To(ContainSubstring("Type selection: "))
		})

		It("exits on 0 without running anything", func() {
			msg := submit(model, "0")

			Expect(msg).To(Equal(tea.QuitMsg{}))
			Expect(model.Quitting()).To(BeTrue())
			Expect(model.Fatal()).To(BeNil())
			Expect(model.View()).To(BeEmpty())
			Expect(runner.Calls()).To(BeEmpty())
		})

		It("shows one notice for invalid input and keeps the state", func() {
			msg := submit(model, "7")

			Expect(msg).To(BeNil())
			Expect(model.Notice()).To(Equal(InvalidNotice))
			Expect(model.State()).To(Equal(navigator.Initial()))
			Expect(model.View()).To(ContainSubstring(InvalidNotice))
			Expect(runner.Calls()).To(BeEmpty())
		})

		It("clears the notice on the next valid input", func() {
			submit(model, "x")
			submit(model, "1")

			Expect(model.Notice()).To(BeEmpty())
			Expect(model.View()).NotTo(ContainSubstring(InvalidNotice))
		})

		It("lists the phone for Phone -> PC", func() {
			submit(model, "1")

			Expect(runner.Calls()).To(Equal([]gateway.Call{
				{Executable: "adb", Args: []string{"shell", "ls", devicePath}},
			}))
			Expect(model.State().Level).To(Equal(navigator.LevelFileSelect))
			Expect(model.State().Listing).To(Equal([]string{"x.sav", "y.sav"}))
		})

		It("lists the PC for PC -> Phone", func() {
			submit(model, "2")

			Expect(runner.Calls()).To(Equal([]gateway.Call{
				{Executable: "powershell.exe", Args: []string{hostListCmd}},
			}))
			Expect(model.State().Listing).To(Equal([]string{"a.sav", "b.sav"}))
		})
	})

	Describe("File menu", func() {
		It("renders the numbered listing", func() {
			submit(model, "2")

			view := model.View()
			Expect(view).To(ContainSubstring("Select file to copy."))
			Expect(view).To(ContainSubstring("[1] a.sav"))
			Expect(view).To(ContainSubstring("[2] b.sav"))
			Expect(view).To(ContainSubstring("[0] Back"))
		})

		It("keeps the file menu on an out-of-range choice", func() {
			submit(model, "2")
			before := model.State()

			submit(model, "3")

			Expect(model.Notice()).To(Equal(InvalidNotice))
			Expect(model.State()).To(Equal(before))
		})

		It("fetches a fresh listing after Back", func() {
			submit(model, "1")
			submit(model, "0")
			submit(model, "1")

			Expect(runner.CallsWith("adb", "shell")).To(HaveLen(2))
			Expect(runner.CallsWith("adb", "pull")).To(BeEmpty())
		})

		It("applies the listing filter", func() {
			runner = gateway.NewMockRunner().
				On(gateway.Result{Stdout: []byte("a.SAV\nnotes.txt\n"), Success: true}, "adb", "shell", "ls")
			filter = listing.NewFilter("*.sav")
			build()

			submit(model, "1")

			Expect(model.State().Listing).To(Equal([]string{"a.SAV"}))
		})

		It("offers only Back for an empty listing", func() {
			runner = gateway.NewMockRunner().On(gateway.Result{Success: true}, "adb", "shell", "ls")
			build()

			submit(model, "1")

			view := model.View()
			Expect(view).To(ContainSubstring("No files found."))
			Expect(view).To(ContainSubstring("[0] Back"))
			Expect(view).NotTo(ContainSubstring("[1]"))

			submit(model, "1")
			Expect(model.Notice()).To(Equal(InvalidNotice))

			submit(model, "0")
			Expect(model.State()).To(Equal(navigator.Initial()))
		})

		It("returns to the direction menu when listing fails", func() {
			runner = gateway.NewMockRunner().On(gateway.Result{
				Stderr:  []byte("ls: /sdcard/saves/: No such file or directory\n"),
				Success: false,
			}, "adb", "shell", "ls")
			build()

			submit(model, "1")

			Expect(model.State()).To(Equal(navigator.Initial()))
			Expect(model.Fatal()).To(BeNil())

			view := model.View()
			Expect(view).To(ContainSubstring("Failed to list files for Phone -> PC"))
			Expect(view).To(ContainSubstring("No such file or directory"))
			Expect(view).To(ContainSubstring("Select Source -> Destination."))
		})
	})

	Describe("Confirmation", func() {
		It("asks about the selected file and destination", func() {
			submit(model, "2")
			submit(model, "2")

			view := model.View()
			Expect(view).To(ContainSubstring("you want to copy file"))
			Expect(view).To(ContainSubstring("b.sav"))
			Expect(view).To(ContainSubstring("Phone"))
			Expect(view).To(ContainSubstring("[1] Yes"))
			Expect(view).To(ContainSubstring("[2] No"))
		})

		It("goes back to the same listing on No", func() {
			submit(model, "2")
			listed := model.State()

			submit(model, "2")
			submit(model, "2")

			Expect(model.State()).To(Equal(listed))
			Expect(runner.CallsWith("powershell.exe", hostListCmd)).To(HaveLen(1))
			Expect(runner.CallsWith("adb", "push")).To(BeEmpty())
		})

		It("pushes exactly once on Yes and restarts", func() {
			submit(model, "2")
			submit(model, "2")
			submit(model, "1")

			Expect(runner.CallsWith("adb", "push")).To(Equal([]gateway.Call{
				{Executable: "adb", Args: []string{"push", hostPath + "b.sav", devicePath}},
			}))
			Expect(runner.CallsWith("adb", "pull")).To(BeEmpty())
			Expect(model.State()).To(Equal(navigator.Initial()))
			Expect(model.View()).To(ContainSubstring("Copied b.sav to Phone"))
		})

		It("pulls on Yes for Phone -> PC", func() {
			submit(model, "1")
			submit(model, "1")
			submit(model, "1")

			Expect(runner.CallsWith("adb", "pull")).To(Equal([]gateway.Call{
				{Executable: "adb", Args: []string{"pull", devicePath + "x.sav", hostPath}},
			}))
		})

		It("reports a failed copy and stays usable", func() {
			runner.On(gateway.Result{
				Stderr:  []byte("adb: error: no devices/emulators found\n"),
				Success: false,
			}, "adb", "push")

			submit(model, "2")
			submit(model, "1")
			submit(model, "1")

			Expect(model.Fatal()).To(BeNil())
			Expect(model.State()).To(Equal(navigator.Initial()))

			view := model.View()
			Expect(view).To(ContainSubstring("Failed to copy a.sav to Phone"))
			Expect(view).To(ContainSubstring("no devices/emulators found"))
			Expect(view).To(ContainSubstring("USB debugging"))
		})

		It("clears the last report on the next input", func() {
			submit(model, "2")
			submit(model, "1")
			submit(model, "1")
			submit(model, "9")

			Expect(model.View()).NotTo(ContainSubstring("Copied a.sav"))
		})
	})

	Describe("Busy handling", func() {
		It("ignores Enter while a command runs", func() {
			for _, r := range "1" {
				model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
			}

			fetch := press(model, tea.KeyEnter)
			Expect(fetch).NotTo(BeNil())
			Expect(model.Busy()).To(BeTrue())
			Expect(model.View()).To(ContainSubstring("Working…"))

			Expect(press(model, tea.KeyEnter)).To(BeNil())

			model.Update(fetch())
			Expect(model.Busy()).To(BeFalse())
			Expect(runner.Calls()).To(HaveLen(1))
		})
	})

	Describe("Fatal errors", func() {
		It("quits when a command cannot be started", func() {
			launchErr := &gateway.ProcessError{Executable: "adb", Err: errors.New("executable file not found")}
			runner = gateway.NewMockRunner().OnError(gateway.Result{}, launchErr, "adb", "shell", "ls")
			build()

			msg := submit(model, "1")

			Expect(msg).To(Equal(tea.QuitMsg{}))

			var procErr *gateway.ProcessError
			Expect(errors.As(model.Fatal(), &procErr)).To(BeTrue())
			Expect(model.View()).To(BeEmpty())
		})

		It("cancels running commands on Ctrl+C", func() {
			cmd := press(model, tea.KeyCtrlC)

			Expect(cmd()).To(Equal(tea.QuitMsg{}))
			Expect(model.ctx.Err()).To(MatchError(context.Canceled))
			Expect(model.Fatal()).To(BeNil())
		})
	})
})
