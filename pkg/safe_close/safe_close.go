package safe_close

import (
	"sync"
)

// SafeClose coordinates graceful shutdown of multiple goroutines.
// Attached routines receive a close signal and report completion through done().
// SafeClose 协调多个 goroutine 的优雅关闭。
// 被 Attach 的例程会收到关闭信号，并通过 done() 汇报完成。
type SafeClose struct {
	mu        sync.Mutex
	closeOnce sync.Once
	closeErr  error
	closeCh   chan struct{}
	wg        sync.WaitGroup
}

// NewSafeClose creates a SafeClose instance
// NewSafeClose 创建 SafeClose 实例
func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeCh: make(chan struct{}),
	}
}

// Attach runs f in its own goroutine. f must call done() when it has fully
// stopped, and should begin shutting down once closeSignal is closed.
// Attach 在独立 goroutine 中运行 f。f 停止后必须调用 done()，
// 并在 closeSignal 关闭后开始退出。
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	done := func() {
		s.wg.Done()
	}
	go f(done, s.closeCh)
}

// SendCloseSignal broadcasts the close signal. The first error wins.
// SendCloseSignal 广播关闭信号。第一个错误会被保留。
func (s *SafeClose) SendCloseSignal(err error) {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closeErr = err
		s.mu.Unlock()
		close(s.closeCh)
	})
}

// ReceiveCloseSignal exposes the close channel for select loops
// ReceiveCloseSignal 暴露关闭通道供 select 使用
func (s *SafeClose) ReceiveCloseSignal() <-chan struct{} {
	return s.closeCh
}

// WaitClosed blocks until every attached routine has called done(),
// then returns the error passed to SendCloseSignal, if any.
// WaitClosed 阻塞直到所有例程调用 done()，返回关闭时的错误（如有）。
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeErr
}
