// Package shell provides the interactive menu for browsing and editing the
// movie catalog.
package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/cinemania/internal/appcontext"
	"github.com/agentstation/cinemania/internal/cmd/alerts"
	"github.com/agentstation/cinemania/internal/cmd/cmdutil"
	"github.com/agentstation/cinemania/internal/cmd/output"
	"github.com/agentstation/cinemania/pkg/errors"
	"github.com/agentstation/cinemania/pkg/movies"
)

const (
	headerWidth = 80
	menuWidth   = 50
)

// NewCommand creates the shell command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		GroupID: "core",
		Short:   "Manage the catalog from an interactive menu",
		Long: `Shell opens a numbered menu to list, search, view, add, edit and delete
movies, and to import and export catalog files. The catalog given with
--file is loaded first. Changes live in memory until exported.`,
		Example: `  cinemania shell
  cinemania shell -f movies.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := cmdutil.LoadStore(cmd, app)
			if err != nil {
				return err
			}
			s := newSession(cmd.Context(), app, store, cmd.InOrStdin(), cmd.OutOrStdout())
			return s.run()
		},
	}
}

// session is one interactive run over a store.
type session struct {
	ctx    context.Context
	app    appcontext.Interface
	store  *movies.Store
	in     *prompter
	out    io.Writer
	alerts alerts.Writer
	format output.Format
}

func newSession(ctx context.Context, app appcontext.Interface, store *movies.Store, in io.Reader, out io.Writer) *session {
	format := output.FormatTable
	if cmdutil.Format(app) == output.FormatWide {
		format = output.FormatWide
	}
	return &session{
		ctx:    ctx,
		app:    app,
		store:  store,
		in:     newPrompter(in, out),
		out:    out,
		alerts: alerts.NewFormatWriter(out, output.FormatTable),
		format: format,
	}
}

// run shows the main menu until the user exits or the input ends.
func (s *session) run() error {
	s.header("CineMania - Movie Management System")
	fmt.Fprintln(s.out, "Welcome to CineMania!")

	for {
		if err := s.ctx.Err(); err != nil {
			return err
		}

		s.mainMenu()
		choice, err := s.in.integer("\nEnter your choice: ", 0, 9)
		if err != nil {
			return endOfInput(err)
		}
		fmt.Fprintln(s.out)

		s.app.Logger().Debug().Int("choice", choice).Msg("menu selection")

		done, err := s.dispatch(choice)
		if err != nil {
			return endOfInput(err)
		}
		if done {
			return nil
		}
	}
}

func (s *session) dispatch(choice int) (bool, error) {
	switch choice {
	case 1:
		return false, s.listMovies()
	case 2:
		return false, s.searchMovies()
	case 3:
		return false, s.viewMovie()
	case 4:
		return false, s.addMovie()
	case 5:
		return false, s.editMovie()
	case 6:
		return false, s.deleteMovie()
	case 7:
		return false, s.clearMovies()
	case 8:
		return false, s.importMovies()
	case 9:
		return false, s.exportMovies()
	default:
		return s.exit()
	}
}

func (s *session) mainMenu() {
	s.header("Main Menu")
	fmt.Fprint(s.out, `1. List all movies
2. Search movies
3. View movie details
4. Add new movie
5. Edit movie
6. Delete movie
7. Clear all movies
8. Import movies from CSV file
9. Export movies to CSV file
0. Exit
`)
	s.rule(headerWidth)
}

func (s *session) exit() (bool, error) {
	ok, err := s.in.confirm("Are you sure you want to exit?")
	if err != nil || !ok {
		return false, err
	}
	fmt.Fprintln(s.out, "Thank you for using CineMania!")
	return true, nil
}

// endOfInput turns a closed input into a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *session) header(title string) {
	fmt.Fprintln(s.out)
	s.rule(headerWidth)
	padding := max((headerWidth-len(title)-2)/2, 0)
	fmt.Fprintf(s.out, "%s %s \n", strings.Repeat(" ", padding), title)
	s.rule(headerWidth)
}

func (s *session) rule(width int) {
	fmt.Fprintln(s.out, strings.Repeat("-", width))
}

func (s *session) notify(alert *alerts.Alert) {
	_ = s.alerts.WriteAlert(alert)
}

// requireMovies reports an empty store and returns false.
func (s *session) requireMovies() bool {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "No movies in database.")
		return false
	}
	return true
}

func (s *session) writeTable(indices []int) error {
	return output.WriteMovies(s.out, s.format, cmdutil.MoviesAt(s.store, indices))
}

func (s *session) writeGenreCatalog() {
	fmt.Fprintln(s.out, "\nAvailable Genres:")
	s.rule(menuWidth)
	_ = movies.WriteGenreList(s.out)
	s.rule(menuWidth)
}

// readGenres reads a genre list, warning about each unknown name.
func (s *session) readGenres(prompt string) (string, []movies.Genre, error) {
	input, err := s.in.line(prompt)
	if err != nil {
		return "", nil, err
	}
	genres, unknown := movies.ParseGenreList(input)
	for _, name := range unknown {
		s.notify(alerts.NewWarning("Unknown genre '%s' ignored.", name))
	}
	return input, genres, nil
}
