package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentstation/cinemania/internal/cmd/alerts"
	"github.com/agentstation/cinemania/internal/cmd/cmdutil"
	"github.com/agentstation/cinemania/internal/cmd/table"
	"github.com/agentstation/cinemania/pkg/constants"
	"github.com/agentstation/cinemania/pkg/csvio"
	"github.com/agentstation/cinemania/pkg/errors"
	"github.com/agentstation/cinemania/pkg/movies"
)

func (s *session) listMovies() error {
	if !s.requireMovies() {
		return nil
	}

	s.header("List All Movies")
	fmt.Fprintf(s.out, "Total movies: %d\n\n", s.store.Len())
	fmt.Fprint(s.out, "Sort order:\n1. Ascending by code\n2. Descending by code\n3. By title\n")
	sortChoice, err := s.in.integer("Choice: ", 1, 3)
	if err != nil {
		return err
	}

	var indices []int
	switch sortChoice {
	case 1:
		s.store.SortByCode(movies.Ascending)
		indices = cmdutil.AllIndices(s.store)
	case 2:
		s.store.SortByCode(movies.Descending)
		indices = cmdutil.AllIndices(s.store)
	default:
		indices = cmdutil.AllIndices(s.store)
		if err := s.store.SortByTitle(indices); err != nil {
			return err
		}
	}

	fmt.Fprintf(s.out, "\nUse pagination (%d lines per page)?\n1. Yes\n2. No\n", s.app.PageSize())
	paged, err := s.in.integer("Choice: ", 1, 2)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out)

	if paged == 2 {
		return s.writeTable(indices)
	}
	return s.page(indices)
}

// page shows indices a page at a time. Unknown answers redisplay the
// current page, except on the last page where anything but "p" leaves.
func (s *session) page(indices []int) error {
	size := s.app.PageSize()
	total := (len(indices) + size - 1) / size

	for page := 0; ; {
		start := page * size
		end := min(start+size, len(indices))

		s.header("Movie List")
		fmt.Fprintf(s.out, "Page %d of %d (Total movies: %d)\n\n", page+1, total, len(indices))
		if err := s.writeTable(indices[start:end]); err != nil {
			return err
		}

		last := page+1 >= total
		var prompt string
		switch {
		case !last:
			prompt = "\n[N]ext page | [P]revious page | [Q]uit: "
		case page > 0:
			prompt = "\n[P]revious page | [Q]uit: "
		default:
			return nil
		}

		answer, err := s.in.line(prompt)
		if err != nil {
			return err
		}
		answer = strings.ToLower(answer)

		switch {
		case strings.HasPrefix(answer, "p") && page > 0:
			page--
		case strings.HasPrefix(answer, "n") && !last:
			page++
		case strings.HasPrefix(answer, "q"), last:
			return nil
		}
	}
}

func (s *session) searchMovies() error {
	if !s.requireMovies() {
		return nil
	}

	s.header("Search Movies")
	fmt.Fprint(s.out, "Search by:\n1. Title (substring)\n2. Genre\n3. Director\n4. Actor\n0. Cancel\n")
	s.rule(menuWidth)
	choice, err := s.in.integer("Choice: ", 0, 4)
	if err != nil || choice == 0 {
		return err
	}
	fmt.Fprintln(s.out)

	var kind movies.SearchKind
	var term string
	switch choice {
	case 1:
		kind = movies.ByTitle
		if term, err = s.in.line("Enter title (or part of it): "); err != nil {
			return err
		}
		if term == "" {
			fmt.Fprintln(s.out, "Search term cannot be empty.")
			return nil
		}
	case 2:
		kind = movies.ByGenre
		s.writeGenreCatalog()
		n, err := s.in.integer(fmt.Sprintf("\nSelect genre (1-%d): ", movies.NumGenres), 1, movies.NumGenres)
		if err != nil {
			return err
		}
		term = strconv.Itoa(n)
	case 3:
		kind = movies.ByDirector
		if term, err = s.in.line("Enter director name: "); err != nil {
			return err
		}
		if term == "" {
			fmt.Fprintln(s.out, "Director name cannot be empty.")
			return nil
		}
	case 4:
		kind = movies.ByActor
		if term, err = s.in.line("Enter actor name: "); err != nil {
			return err
		}
		if term == "" {
			fmt.Fprintln(s.out, "Actor name cannot be empty.")
			return nil
		}
	}

	indices, err := s.store.Search(kind, term, 0)
	if err != nil {
		s.notify(alerts.NewError("Search failed").WithError(err))
		return nil
	}
	fmt.Fprintln(s.out)

	if len(indices) == 0 {
		fmt.Fprintln(s.out, "No movies found.")
		return nil
	}
	if err := s.store.SortByTitle(indices); err != nil {
		return err
	}
	s.header("Search Results")
	fmt.Fprintf(s.out, "Found %d movie(s)\n\n", len(indices))
	return s.writeTable(indices)
}

func (s *session) viewMovie() error {
	if !s.requireMovies() {
		return nil
	}

	code, err := s.in.integer("Enter movie code: ", 1, constants.MaxCodeInput)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out)

	m, err := s.store.Get(code)
	if err != nil {
		s.notify(alerts.NewError("Movie with code %d not found.", code))
		return nil
	}

	s.header("Movie Details")
	if err := table.WriteMovieDetail(s.out, m); err != nil {
		return err
	}
	s.rule(headerWidth)
	return nil
}

func (s *session) addMovie() error {
	if s.store.IsFull() {
		s.notify(alerts.NewError("Database is full (maximum %d movies).", s.store.Capacity()))
		return nil
	}

	s.header("Add New Movie")
	m := movies.Movie{Code: s.store.NextAvailableCode()}
	fmt.Fprintf(s.out, "Auto-generated code: %d\n\n", m.Code)

	var err error
	if m.Title, err = s.in.line("Title: "); err != nil {
		return err
	}
	if m.Title == "" {
		s.notify(alerts.NewError("Title cannot be empty."))
		return nil
	}

	for len(m.Genres) == 0 {
		fmt.Fprintln(s.out)
		s.writeGenreCatalog()
		if _, m.Genres, err = s.readGenres("\nEnter genres separated by commas (e.g., Action, Drama, Comedy): "); err != nil {
			return err
		}
		if len(m.Genres) == 0 {
			s.notify(alerts.NewError("At least one valid genre is required. Please try again."))
		}
	}

	fmt.Fprintln(s.out)
	if m.Description, err = s.in.line("Description: "); err != nil {
		return err
	}
	if m.Director, err = s.in.line("Director: "); err != nil {
		return err
	}
	if m.Director == "" {
		s.notify(alerts.NewError("Director cannot be empty."))
		return nil
	}

	actors, err := s.in.line("\nEnter actors separated by commas: ")
	if err != nil {
		return err
	}
	m.Actors = movies.ParseActorList(actors)

	fmt.Fprintln(s.out)
	if m.Year, err = s.in.integer("Year: ", constants.MinYear, constants.MaxYear); err != nil {
		return err
	}
	if m.Duration, err = s.in.integer("Duration (minutes): ", 1, constants.MaxDuration); err != nil {
		return err
	}
	if m.Rating, err = s.in.decimal("Rating (0-10): ", constants.MinRating, constants.MaxRating); err != nil {
		return err
	}
	if m.Favorite, err = s.in.integer("Favorites count: ", 0, constants.MaxFavorite); err != nil {
		return err
	}
	if m.Revenue, err = s.in.decimal("Revenue (millions): ", 0, constants.MaxRevenue); err != nil {
		return err
	}

	if err := s.store.Insert(m); err != nil {
		s.notify(alerts.NewError("Movie not added").WithError(err))
		return nil
	}
	s.app.Logger().Info().Int("code", m.Code).Str("title", m.Title).Msg("movie added")
	fmt.Fprintln(s.out)
	s.notify(alerts.NewSuccess("Movie added successfully with code %d!", m.Code))
	return nil
}

// fieldLabels names the editable fields in the edit menu.
var fieldLabels = map[movies.Field]string{
	movies.FieldTitle:    "Title",
	movies.FieldGenres:   "Genres",
	movies.FieldYear:     "Year",
	movies.FieldDuration: "Duration",
	movies.FieldRating:   "Rating",
	movies.FieldFavorite: "Favorites count",
	movies.FieldRevenue:  "Revenue",
}

func (s *session) editMovie() error {
	if !s.requireMovies() {
		return nil
	}

	code, err := s.in.integer("Enter movie code to edit: ", 1, constants.MaxCodeInput)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out)

	m, err := s.store.Get(code)
	if err != nil {
		s.notify(alerts.NewError("Movie with code %d not found.", code))
		return nil
	}

	s.header("Edit Movie")
	fmt.Fprintf(s.out, "Editing movie: %s (Code: %d)\n\n", m.Title, m.Code)
	fmt.Fprintln(s.out, "What would you like to edit?")
	s.rule(menuWidth)
	fields := movies.EditableFields()
	for i, f := range fields {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, fieldLabels[f])
	}
	fmt.Fprintln(s.out, "0. Cancel")
	s.rule(menuWidth)

	choice, err := s.in.integer("Choice: ", 0, len(fields))
	if err != nil {
		return err
	}
	if choice == 0 {
		fmt.Fprintln(s.out, "Edit cancelled.")
		return nil
	}

	field := fields[choice-1]
	value, ok, err := s.readFieldValue(field)
	if err != nil || !ok {
		return err
	}

	if err := s.store.EditField(code, field, value); err != nil {
		s.notify(alerts.NewError("%s not updated", fieldLabels[field]).WithError(err))
		return nil
	}
	s.app.Logger().Info().Int("code", code).Str("field", field.String()).Msg("movie edited")
	s.notify(alerts.NewSuccess("%s updated successfully.", fieldLabels[field]))
	return nil
}

// readFieldValue prompts for a new value of field. ok is false when the
// answer leaves the movie unchanged.
func (s *session) readFieldValue(field movies.Field) (value string, ok bool, err error) {
	switch field {
	case movies.FieldTitle:
		value, err = s.in.line("New title: ")
		return value, value != "", err

	case movies.FieldGenres:
		s.writeGenreCatalog()
		input, genres, err := s.readGenres("\nEnter new genres separated by commas: ")
		if err != nil {
			return "", false, err
		}
		if len(genres) == 0 {
			s.notify(alerts.NewError("At least one valid genre is required. Changes not saved."))
			return "", false, nil
		}
		return input, true, nil

	case movies.FieldYear:
		return s.intValue("New year: ", constants.MinYear, constants.MaxYear)
	case movies.FieldDuration:
		return s.intValue("New duration (minutes): ", 1, constants.MaxDuration)
	case movies.FieldFavorite:
		return s.intValue("New favorites count: ", 0, constants.MaxFavorite)
	case movies.FieldRating:
		return s.decimalValue("New rating (0-10): ", constants.MinRating, constants.MaxRating)
	case movies.FieldRevenue:
		return s.decimalValue("New revenue (millions): ", 0, constants.MaxRevenue)
	}
	return "", false, errors.NewNotEditableError(field.String())
}

func (s *session) intValue(prompt string, min, max int) (string, bool, error) {
	n, err := s.in.integer(prompt, min, max)
	if err != nil {
		return "", false, err
	}
	return strconv.Itoa(n), true, nil
}

func (s *session) decimalValue(prompt string, min, max float64) (string, bool, error) {
	f, err := s.in.decimal(prompt, min, max)
	if err != nil {
		return "", false, err
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true, nil
}

func (s *session) deleteMovie() error {
	if !s.requireMovies() {
		return nil
	}

	code, err := s.in.integer("Enter movie code to delete: ", 1, constants.MaxCodeInput)
	if err != nil {
		return err
	}

	m, err := s.store.Get(code)
	if err != nil {
		fmt.Fprintln(s.out)
		s.notify(alerts.NewError("Movie with code %d not found.", code))
		return nil
	}

	fmt.Fprintf(s.out, "\nMovie: %s\n", m.Title)
	ok, err := s.in.confirm("Are you sure you want to delete this movie?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.out, "Deletion cancelled.")
		return nil
	}

	if err := s.store.Delete(code); err != nil {
		s.notify(alerts.NewError("Movie not deleted").WithError(err))
		return nil
	}
	s.app.Logger().Info().Int("code", code).Msg("movie deleted")
	s.notify(alerts.NewSuccess("Movie with code %d deleted successfully.", code))
	return nil
}

func (s *session) clearMovies() error {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "Database is already empty.")
		return nil
	}

	fmt.Fprintf(s.out, "Current number of movies: %d\n\n", s.store.Len())
	ok, err := s.in.confirm("Are you sure you want to clear all movies?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.out, "Operation cancelled.")
		return nil
	}

	s.store.Clear()
	s.notify(alerts.NewSuccess("All movies cleared successfully."))
	return nil
}

func (s *session) importMovies() error {
	s.header("Import Movies")
	fmt.Fprintf(s.out, "Current number of movies: %d\n", s.store.Len())
	fmt.Fprintf(s.out, "Available space: %d\n\n", s.store.Available())

	path, err := s.readFilename()
	if err != nil || path == "" {
		return err
	}

	fmt.Fprintf(s.out, "\nImporting movies from '%s'...\n", path)
	result, err := csvio.Import(s.ctx, s.store, path)
	if err != nil {
		s.notify(alerts.NewError("Could not import '%s'", path).WithError(err))
		return nil
	}

	for _, skipped := range result.Skipped {
		if skipped.Reason != csvio.SkipDuplicate {
			s.notify(alerts.NewWarning("Line %d skipped: %s", skipped.Line, skipped.Message()))
		}
	}

	fmt.Fprintln(s.out, "\nImport complete:")
	fmt.Fprintf(s.out, "- %d movies imported successfully\n", result.Imported)
	if result.Duplicates > 0 {
		fmt.Fprintf(s.out, "- %d duplicate movies skipped\n", result.Duplicates)
	}
	if result.Invalid > 0 {
		fmt.Fprintf(s.out, "- %d invalid lines skipped\n", result.Invalid)
	}
	if result.Rejected > 0 {
		fmt.Fprintf(s.out, "- %d movies rejected, database full\n", result.Rejected)
	}
	return nil
}

func (s *session) exportMovies() error {
	s.header("Export Movies")
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "No movies to export.")
		return nil
	}
	fmt.Fprintf(s.out, "Number of movies to export: %d\n\n", s.store.Len())

	path, err := s.readFilename()
	if err != nil || path == "" {
		return err
	}

	fmt.Fprintf(s.out, "\nExporting %d movies to '%s'...\n", s.store.Len(), path)
	if err := csvio.Export(s.ctx, s.store, path); err != nil {
		if errors.Is(err, errors.ErrAlreadyExists) {
			s.notify(alerts.NewError("File '%s' already exists. Export cancelled.", path))
		} else {
			s.notify(alerts.NewError("Could not export to '%s'", path).WithError(err))
		}
		return nil
	}
	s.notify(alerts.NewSuccess("Export complete: %d movies exported to '%s'.", s.store.Len(), path))
	return nil
}

// readFilename asks for a file path. An empty answer is reported and
// returned as "".
func (s *session) readFilename() (string, error) {
	path, err := s.in.line("Enter CSV filename (or path): ")
	if err != nil {
		return "", err
	}
	if path == "" {
		fmt.Fprintln(s.out, "Filename cannot be empty.")
	}
	return path, nil
}
