// Package scene holds the drawable nodes of the globe animation and the
// ordered container the renderer walks each frame.
//
// Nodes are plain data. The graph only tracks membership and draw order;
// projection and rasterization live in package render.
package scene
