// Package build generates the static site.
//
// A build runs in phases:
//
//  1. Discover Markdown files under each source directory.
//  2. Render every file on a fixed pool of workers. Each worker renders,
//     executes the page template and writes its own output file, then stores
//     its result at the file's index. Workers share no mutable state.
//  3. Wait for all workers.
//  4. Reduce the results sequentially: collect and sort posts, build the
//     deduplicated asset copy map and tally failures.
//  5. Copy assets concurrently.
//  6. Write the index, 404, tag pages, the Atom feed and theme static files.
//
// A failing file never affects another file's page. With FailFast the first
// failure aborts the build.
package build
