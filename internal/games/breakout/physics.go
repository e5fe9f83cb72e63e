package breakout

import (
	"math"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
)

// WallHit identifies which wall the ball bounced off during an update.
type WallHit int

const (
	WallNone WallHit = iota
	WallLeft
	WallRight
	WallTop
)

// Ball is the bouncing ball. X and Y are its center in field pixels,
// speeds are pixels per frame.
type Ball struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Radius         float64
	Launched       bool
	BaseSpeed      float64 // Difficulty speed, ignoring effects

	fieldW   float64
	fieldH   float64
	restY    float64
	maxAngle float64 // Degrees from vertical at the paddle edge
}

func newBall(cfg config.BreakoutConfig) *Ball {
	return &Ball{
		Radius:   cfg.Ball.Radius,
		fieldW:   cfg.Field.Width,
		fieldH:   cfg.Field.Height,
		restY:    paddleY(cfg) - cfg.Ball.Radius - 1,
		maxAngle: cfg.Ball.MaxBounceAngle,
	}
}

// Reset places the ball above the paddle center, unlaunched, moving up and
// to the right at exactly the difficulty's ball speed.
func (b *Ball) Reset(setting config.DifficultySetting) {
	b.X = b.fieldW / 2
	b.Y = b.restY
	component := setting.BallSpeed / math.Sqrt2
	b.SpeedX = component
	b.SpeedY = -component
	b.BaseSpeed = setting.BallSpeed
	b.Launched = false
}

// Launch puts the ball in motion. It reports whether the ball was resting.
func (b *Ball) Launch() bool {
	if b.Launched {
		return false
	}
	b.Launched = true
	return true
}

// Update follows the paddle while resting, otherwise integrates the
// velocity and resolves side and top walls. The bottom is left to the caller.
func (b *Ball) Update(paddleX, paddleWidth float64) WallHit {
	if !b.Launched {
		b.X = paddleX + paddleWidth/2
		b.Y = b.restY
		return WallNone
	}

	b.X += b.SpeedX
	b.Y += b.SpeedY
	return b.CheckWallCollision()
}

// CheckWallCollision reflects off the left, right and top walls, clamping
// the ball back inside. When the top and a side are hit in the same frame
// the top is reported.
func (b *Ball) CheckWallCollision() WallHit {
	hit := WallNone

	if b.X+b.Radius > b.fieldW {
		b.X = b.fieldW - b.Radius
		b.SpeedX = -math.Abs(b.SpeedX)
		hit = WallRight
	} else if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.SpeedX = math.Abs(b.SpeedX)
		hit = WallLeft
	}

	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.SpeedY = math.Abs(b.SpeedY)
		hit = WallTop
	}

	return hit
}

// CheckBottomCollision reports whether the ball crossed the bottom edge.
func (b *Ball) CheckBottomCollision() bool {
	return b.Y+b.Radius > b.fieldH
}

// CheckPaddleCollision bounces the ball off the paddle. The outgoing angle
// depends linearly on where the ball struck, from -maxAngle at the left edge
// to +maxAngle at the right edge, and the current speed is kept so timed
// speed effects survive the bounce.
func (b *Ball) CheckPaddleCollision(px, py, pw, ph float64) bool {
	if !b.Launched || pw <= 0 {
		return false
	}
	if !core.NewRect(px, py, pw, ph).IntersectsCircle(b.X, b.Y, b.Radius) {
		return false
	}

	hitPos := (b.X - px) / pw
	angle := (hitPos - 0.5) * 2 * b.maxAngle * math.Pi / 180
	speed := b.Speed()

	b.SpeedX = speed * math.Sin(angle)
	b.SpeedY = -speed * math.Cos(angle)
	return true
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.SpeedX, b.SpeedY)
}

// AdjustSpeed scales the velocity uniformly.
func (b *Ball) AdjustSpeed(multiplier float64) {
	b.SpeedX *= multiplier
	b.SpeedY *= multiplier
}

// RestoreSpeed rescales the velocity to target while keeping its direction.
// A zero velocity is left untouched.
func (b *Ball) RestoreSpeed(target float64) {
	current := b.Speed()
	if current == 0 {
		return
	}
	b.SpeedX = b.SpeedX / current * target
	b.SpeedY = b.SpeedY / current * target
}

// Direction is a keyboard paddle movement.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// resizeAnimation interpolates the paddle width around a fixed center.
type resizeAnimation struct {
	StartWidth  float64
	TargetWidth float64
	CenterX     float64
	StartedAt   int64
	Progress    float64 // Eased progress, may overshoot 1
}

// Paddle is the player's paddle. Y is fixed; width depends on effects.
type Paddle struct {
	X, Y      float64
	Height    float64
	Speed     float64
	BaseWidth float64

	fieldW    float64
	expandMul float64
	shrinkMul float64
	resizeMs  int64
	animation *resizeAnimation
}

func newPaddle(cfg config.BreakoutConfig) *Paddle {
	return &Paddle{
		Y:         paddleY(cfg),
		Height:    cfg.Paddle.Height,
		Speed:     cfg.Paddle.Speed,
		fieldW:    cfg.Field.Width,
		expandMul: cfg.Effects.ExpandMultiplier,
		shrinkMul: cfg.Effects.ShrinkMultiplier,
		resizeMs:  cfg.Animation.ResizeMs,
	}
}

func paddleY(cfg config.BreakoutConfig) float64 {
	return cfg.Field.Height - cfg.Paddle.Height - cfg.Paddle.BottomMargin
}

// Reset centers the paddle at the difficulty's base width.
func (p *Paddle) Reset(setting config.DifficultySetting) {
	p.BaseWidth = setting.PaddleWidth
	p.X = (p.fieldW - p.BaseWidth) / 2
	p.animation = nil
}

// Width returns the target width under the given effects.
// Expand and shrink are exclusive, so at most one multiplier applies.
func (p *Paddle) Width(fx EffectSet) float64 {
	w := p.BaseWidth
	if fx.PaddleExpanded {
		w *= p.expandMul
	}
	if fx.PaddleShrink {
		w *= p.shrinkMul
	}
	return w
}

// AnimatedWidth returns the width currently shown, which differs from
// Width while a resize animation runs.
func (p *Paddle) AnimatedWidth(fx EffectSet) float64 {
	if p.animation == nil {
		return p.Width(fx)
	}
	a := p.animation
	return a.StartWidth + (a.TargetWidth-a.StartWidth)*a.Progress
}

// Resizing reports whether a resize animation is in progress.
func (p *Paddle) Resizing() bool {
	return p.animation != nil
}

// Move shifts the paddle by its speed, clamped to the field.
func (p *Paddle) Move(dir Direction, currentWidth float64) {
	p.setX(p.X + float64(dir)*p.Speed, currentWidth)
}

// MoveTo centers the paddle under a pointer, keeping it fully on the field.
func (p *Paddle) MoveTo(pointerX, currentWidth float64) {
	p.setX(pointerX-currentWidth/2, currentWidth)
}

func (p *Paddle) setX(x, currentWidth float64) {
	x = core.Clamp(x, 0, max(p.fieldW-currentWidth, 0))
	if p.animation != nil {
		p.animation.CenterX += x - p.X
	}
	p.X = x
}

// StartResize begins animating from one width to another around the
// current center.
func (p *Paddle) StartResize(from, to float64, now int64) {
	p.animation = &resizeAnimation{
		StartWidth:  from,
		TargetWidth: to,
		CenterX:     p.X + from/2,
		StartedAt:   now,
	}
}

// Update advances the resize animation. The center stays fixed while the
// width changes; the final position is clamped to the field.
func (p *Paddle) Update(now int64) {
	a := p.animation
	if a == nil {
		return
	}

	progress := 1.0
	if p.resizeMs > 0 {
		progress = min(float64(now-a.StartedAt)/float64(p.resizeMs), 1)
	}
	a.Progress = easeOutElastic(progress)

	width := a.StartWidth + (a.TargetWidth-a.StartWidth)*a.Progress
	p.X = a.CenterX - width/2

	if progress >= 1 {
		p.animation = nil
		p.setX(a.CenterX-a.TargetWidth/2, a.TargetWidth)
	}
}

// easeOutElastic overshoots past 1 and settles back.
func easeOutElastic(x float64) float64 {
	const c4 = 2 * math.Pi / 3
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	default:
		return math.Pow(2, -10*x)*math.Sin((x*10-0.75)*c4) + 1
	}
}
