// Package platform isolates operating-system specific choices, currently the
// executable used to open a URL in the user's default browser.
package platform
