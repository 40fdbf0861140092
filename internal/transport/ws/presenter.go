package ws

import "github.com/heartmarshall/teambuilder/internal/mirror"

// presenter hands view trees to the connection's write loop. It never
// blocks: a slow client skips intermediate trees and gets the latest one.
type presenter struct {
	ch chan mirror.ViewTree
}

func newPresenter() *presenter {
	return &presenter{ch: make(chan mirror.ViewTree, 1)}
}

func (p *presenter) Present(tree mirror.ViewTree) {
	for {
		select {
		case p.ch <- tree:
			return
		default:
		}
		select {
		case <-p.ch:
		default:
		}
	}
}

func (p *presenter) Updates() <-chan mirror.ViewTree {
	return p.ch
}
