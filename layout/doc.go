// SPDX-License-Identifier: MIT

// Package layout assigns canvas positions to network nodes.
//
// The Renderer type follows the common layout-engine shape: adjacency matrix
// in, n×2 coordinate matrix out, with a stop channel for engines that
// iterate. The one engine shipped here, Geographic, is not a simulation at
// all: every locality sits exactly at its projected longitude/latitude, so
// the map stays honest about where co-authorship actually happens. The
// Renderer seam exists so a force-directed engine could be swapped in for
// non-geographic views without touching the rendering side.
//
// Projection is equirectangular: linear in longitude and latitude, with the
// y axis flipped for screen space and uniform padding inside the canvas.
package layout
