// Package menu holds the menu domain: items as the remote API returns them,
// form drafts, the validated request payload, and the client mirror of the
// server's pagination cursors.
package menu
