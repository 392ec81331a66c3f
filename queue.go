// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package mdspan

// queue is a FIFO queue of spans. The number of items is always a power of 2.
//
type queue struct {
	items []Span
	head  int
	tail  int
	count int
}

func (q *queue) reset() {
	for i := range q.items {
		q.items[i] = Span{}
	}
	q.head, q.tail, q.count = 0, 0, 0
}

func (q *queue) push(sp Span) {
	if q.count == len(q.items) {
		n := len(q.items) * 2
		if n == 0 {
			n = 4
		}
		items := make([]Span, n)
		copy(items, q.items[q.head:])
		copy(items[len(q.items)-q.head:], q.items[:q.head])
		q.head = 0
		q.tail = len(q.items)
		q.items = items
	}
	q.items[q.tail] = sp
	q.tail = (q.tail + 1) & (len(q.items) - 1)
	q.count++
}

// pop pops the first item from the queue. Callers must check that q.count > 0 beforehand.
//
func (q *queue) pop() Span {
	i := q.head
	q.head = (q.head + 1) & (len(q.items) - 1)
	q.count--
	sp := q.items[i]
	q.items[i] = Span{}
	return sp
}
