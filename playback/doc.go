// SPDX-License-Identifier: EPL-2.0

// Package playback plays a rendered mixdown through the default audio
// device using github.com/ebitengine/oto/v3.
//
//	p, err := playback.ForMixdown(m)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//	if err := p.Play(m); err != nil {
//	    return err
//	}
//	err = p.Wait(ctx)
//
// Only mono and stereo mixdowns can be played. The audio device is opened
// at most once per process.
package playback
