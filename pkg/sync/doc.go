/*
The sync package plans the transfers needed to mirror a file tree between
the local filesystem and a WebDAV server.

A plan is a lazy stream of primitive actions: directory creations, file
uploads, and file downloads. Actions are produced one at a time as the
consumer pulls them, so a plan never holds a whole subtree's actions in
memory. Production order is fixed: depth-first pre-order, with a directory's
create action always preceding every action for its contents. Executors must
preserve that order, or they would try to write into directories that don't
exist yet.

Plans only describe work. Executing an action against the transport or the
local filesystem is the caller's job, as is deciding what to do when one
action fails.
*/
package sync
