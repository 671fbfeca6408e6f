package contactsheet

import (
	"context"

	"github.com/gogpu/contactsheet/internal/parallel"
)

// frame is a pending step of the sequential walk: either a directory to
// list (node == nil) or a listed directory whose children are done.
type frame struct {
	path  string
	depth int
	node  *DirectoryNode
}

// runSequential walks the tree post-order with an explicit stack, so tree
// depth never grows the goroutine stack. Children are visited in
// name order and composed before their parent.
func (p *processor) runSequential(ctx context.Context, root string) error {
	stack := []frame{{path: root}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node != nil {
			if err := p.process(ctx, f.node); err != nil {
				return err
			}
			continue
		}

		node, err := p.scan(f.path, f.depth)
		if err != nil {
			return err
		}
		stack = append(stack, frame{node: node})
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{path: node.Children[i], depth: f.depth + 1})
		}
	}
	return nil
}

// runConcurrent lists the tree one level at a time, each level as a single
// join, then composes levels deepest-first. Every directory of a level is
// finished before any directory of the level above starts, which is a
// stronger ordering than children-before-parent.
func (p *processor) runConcurrent(ctx context.Context, root string) error {
	levels, err := p.scanLevels(ctx, root)
	if err != nil {
		return err
	}

	for depth := len(levels) - 1; depth >= 0; depth-- {
		nodes := levels[depth]
		err := parallel.Join(ctx, p.workers, len(nodes), func(ctx context.Context, i int) error {
			return p.process(ctx, nodes[i])
		})
		if err != nil {
			return err
		}
		levels[depth] = nil
	}
	return nil
}

// scanLevels lists every directory under root breadth-first. levels[d]
// holds the directories at depth d.
func (p *processor) scanLevels(ctx context.Context, root string) ([][]*DirectoryNode, error) {
	var levels [][]*DirectoryNode

	frontier := []string{root}
	for depth := 0; len(frontier) > 0; depth++ {
		nodes := make([]*DirectoryNode, len(frontier))
		err := parallel.Join(ctx, p.workers, len(frontier), func(_ context.Context, i int) error {
			node, err := p.scan(frontier[i], depth)
			if err != nil {
				return err
			}
			nodes[i] = node
			return nil
		})
		if err != nil {
			return nil, err
		}
		levels = append(levels, nodes)

		var next []string
		for _, n := range nodes {
			next = append(next, n.Children...)
		}
		frontier = next
	}
	return levels, nil
}
