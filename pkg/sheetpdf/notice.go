package sheetpdf

import "fmt"

// Notice returns the message shown to the user for the outcome of an
// operation. Diagnostic detail stays in the logs.
func Notice(err error) string {
	switch KindOf(err) {
	case ErrSourceNotFound:
		return "No spreadsheet found. Put an .xlsx file in the source folder and try again."
	case ErrParseFailure:
		return "The spreadsheet could not be read. Check that it is a valid .xlsx file."
	case ErrPermissionDenied:
		return "Storage access was denied. Grant access to the folder and try again."
	case ErrEmptyContent:
		return "No document loaded."
	case ErrRenderFailure:
		return "The PDF could not be generated."
	case ErrIOFailure:
		return "The PDF could not be saved. Check that the output folder is writable."
	case ErrInvalidRequest:
		return "The page layout settings are invalid."
	case ErrBusy:
		return "Please wait for the current operation to finish."
	default:
		return "Something went wrong."
	}
}

// LoadedNotice is shown after a successful load.
func LoadedNotice(s Session) string {
	return fmt.Sprintf("Spreadsheet loaded: %s", s.Source)
}

// GeneratedNotice is shown after a successful generation.
func GeneratedNotice(r *Result) string {
	return fmt.Sprintf("PDF generated: %s", r.Path)
}
