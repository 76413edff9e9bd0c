// Package raiders animates two textured sprites, a rolling boulder and the
// player running ahead of it, across a fixed orthographic view.
//
// The per-frame work is split in three phases that orion drives: the input
// poll (window close only), Game.Update which advances the Scene by the real
// time elapsed since the previous frame, and Game.Draw which clears the
// screen and draws one quad per sprite with the sprite's model matrix.
package raiders
