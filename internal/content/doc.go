package content

// Package content builds the concrete tiles shown in the shell: the about
// tile rendered from a markdown file and the embedded disclaimer tile. It
// also provides a file watcher that reloads the about tile when its source
// changes on disk.
