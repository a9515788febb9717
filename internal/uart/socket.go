package uart

import (
	"fmt"
	"log/slog"
	"net"
	"time"

	"golang.org/x/sys/unix"
)

// userTimeout is the TCP_USER_TIMEOUT applied to every accepted connection:
// the peer has this long to acknowledge data before the kernel reports the
// connection dead.
const userTimeout = 1000 * time.Millisecond

// InitPort stops any existing listener and, unless port is zero, binds a
// new one to all interfaces. Port zero means "disabled" and leaves the
// device without a listener.
func (d *Device) InitPort(port int) error {
	d.Stop()
	if port == 0 {
		return nil
	}
	l, err := net.Listen("tcp4", fmt.Sprintf("0.0.0.0:%d", port))
	if err != nil {
		return fmt.Errorf("uart: listen on port %d: %w", port, err)
	}
	tcpListener, ok := l.(*net.TCPListener)
	if !ok {
		l.Close()
		return fmt.Errorf("uart: unexpected listener type %T", l)
	}
	d.listener = tcpListener
	slog.Info("uart: listening", "port", port)
	return nil
}

// Stop closes both the listener and any client connection, per the
// device's lifecycle contract.
func (d *Device) Stop() {
	if d.conn != nil {
		d.conn.Close()
		d.conn = nil
	}
	if d.listener != nil {
		d.listener.Close()
		d.listener = nil
	}
}

// acceptStep is protocol step 1: a non-blocking accept attempt, applying
// TCP_USER_TIMEOUT to any newly accepted connection.
func (d *Device) acceptStep() {
	if d.conn != nil || d.listener == nil {
		return
	}
	d.listener.SetDeadline(time.Now())
	conn, err := d.listener.Accept()
	if err != nil {
		return // timeout is the expected would-block outcome
	}
	if err := applyUserTimeout(conn); err != nil {
		slog.Warn("uart: TCP_USER_TIMEOUT unavailable", "error", err)
	}
	d.conn = conn
	slog.Info("uart: client connected", "remote", conn.RemoteAddr())
}

// drainStep is protocol step 2: a non-blocking single-byte read, enqueued
// into the RX FIFO when there is room.
func (d *Device) drainStep() {
	if d.conn == nil || d.rx.Full() {
		return
	}
	d.conn.SetReadDeadline(time.Now())
	var b [1]byte
	n, err := d.conn.Read(b[:])
	if n > 0 {
		d.rx.Push(b[0])
	}
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return
		}
		d.connClosed = true
	}
}

// sendByte writes one byte to the client connection, flagging the
// connection for teardown on any send error (a dropped peer looks
// identical to an explicit disconnect from here on).
func (d *Device) sendByte(b uint8) {
	if d.conn == nil {
		return
	}
	if _, err := d.conn.Write([]byte{b}); err != nil {
		d.connClosed = true
	}
}

// teardownStep is protocol step 12.
func (d *Device) teardownStep() {
	if d.connClosed && d.conn != nil {
		d.conn.Close()
		d.conn = nil
		d.connClosed = false
	}
}

// applyUserTimeout sets TCP_USER_TIMEOUT via the raw file descriptor;
// there is no equivalent in net.Conn's portable surface.
func applyUserTimeout(conn net.Conn) error {
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return fmt.Errorf("not a TCP connection: %T", conn)
	}
	rawConn, err := tcpConn.SyscallConn()
	if err != nil {
		return err
	}
	var sockErr error
	err = rawConn.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_USER_TIMEOUT, int(userTimeout.Milliseconds()))
	})
	if err != nil {
		return err
	}
	return sockErr
}
