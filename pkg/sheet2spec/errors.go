package sheet2spec

import "fmt"

// remediation is appended to NoEndpointsError so the uploader can fix the
// workbook without reading code.
const remediation = `no endpoint rows were recognized in any sheet. ` +
	`Each endpoints sheet needs a header row with a path-like column ` +
	`(accepted: Endpoint, Path, URL, Route, Resource) and may add Method, ` +
	`Description, Request Body, Parameters, Response, Status Codes, Auth, ` +
	`Tags. Minimal example row: Endpoint=/users, Method=GET, ` +
	`Description=List users`

// NoEndpointsError is the only fatal conversion error: after processing
// every sheet, zero endpoints were produced. All other issues are absorbed
// as diagnostics.
type NoEndpointsError struct {
	// BookName is the workbook file name, when known.
	BookName string
}

func (e *NoEndpointsError) Error() string {
	if e.BookName != "" {
		return fmt.Sprintf("%s: %s", e.BookName, remediation)
	}
	return remediation
}
