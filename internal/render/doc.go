// Package render turns a shape description into drawable screen-space
// polygons.
//
// A frame goes through four steps, all in one synchronous pass:
//
//  1. [Transform] rotates every face X, then Y, then Z
//  2. [DepthSort] orders faces far to near by average Z (painter's algorithm)
//  3. [Intensity] and [Shade] compute one flat lighting sample per face
//  4. [Compose] projects vertices and maps them to canvas pixels
//
// [Renderer.Render] runs the whole pipeline. It keeps no per-frame state:
// the caller owns the rotation and passes a snapshot in each [Scene].
package render
