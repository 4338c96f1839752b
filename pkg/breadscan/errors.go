package breadscan

import "errors"

// ErrWorkbookOpen indicates the workbook could not be opened. The scan
// produces no partial result; the caller reports the failure and may
// retry with a corrected file.
var ErrWorkbookOpen = errors.New("cannot open workbook")
