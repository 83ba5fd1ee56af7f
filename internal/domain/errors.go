package domain

import "errors"

// Run-level failures. Per-file problems (unreadable files, missing header
// columns) are logged skips, never errors; these sentinels abort the whole
// run. Callers match them with errors.Is.
var (
	// ErrFolderNotFound reports a missing or non-directory input folder.
	ErrFolderNotFound = errors.New("input folder not found")

	// ErrNoInputFiles reports an input folder containing no .csv files.
	ErrNoInputFiles = errors.New("no csv files in input folder")

	// ErrNoValidData reports that no input file yielded a station record.
	ErrNoValidData = errors.New("no valid temperature data")

	// ErrNoStationData reports that no station retained a numeric reading.
	ErrNoStationData = errors.New("no station has any valid reading")

	// ErrReportWriteFailed reports a failure writing a report file.
	ErrReportWriteFailed = errors.New("report write failed")
)
