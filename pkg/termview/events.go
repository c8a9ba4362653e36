package termview

import "github.com/gdamore/tcell/v2"

// PollEvents 在独立 goroutine 中读取终端事件并转发到返回的通道
//
// done 关闭或屏幕 Fini 后 goroutine 退出并关闭通道；
// 主循环提前返回、不再读取时，阻塞中的发送也会因 done 关闭而放弃。
func PollEvents(screen tcell.Screen, done <-chan struct{}, buffer int) <-chan tcell.Event {
	events := make(chan tcell.Event, buffer)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}
