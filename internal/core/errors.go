package core

import "fmt"

// SignalError represents the error when a signal is caught.
type SignalError string

func (err SignalError) Error() string {
	return fmt.Sprintf("received signal: %s", string(err))
}

// FileAccessError represents the error when the input file cannot be opened
// or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (err *FileAccessError) Error() string {
	return fmt.Sprintf("unable to read file '%s': %s", err.Path, err.Err.Error())
}

func (err *FileAccessError) Unwrap() error {
	return err.Err
}

func (err *FileAccessError) PrintTo(p *Printer) {
	p.WriteString("unable to read file '")
	p.Set(Dim)
	p.WriteString(err.Path)
	p.Reset()
	p.WriteString("': ")
	p.WriteString(err.Err.Error())
}

// ConnectionError represents the error when the TLS or websocket handshake
// with the endpoint fails. No messages have been sent.
type ConnectionError struct {
	URL string
	Err error
}

func (err *ConnectionError) Error() string {
	return fmt.Sprintf("unable to connect to '%s': %s", err.URL, err.Err.Error())
}

func (err *ConnectionError) Unwrap() error {
	return err.Err
}

func (err *ConnectionError) PrintTo(p *Printer) {
	p.WriteString("unable to connect to '")
	p.Set(Bold)
	p.WriteString(err.URL)
	p.Reset()
	p.WriteString("': ")
	p.WriteString(err.Err.Error())
}

// TransmissionError represents the error when a send fails mid-stream. The
// endpoint has received exactly Sent of Total messages; there is no
// resumption.
type TransmissionError struct {
	Sent  int
	Total int
	Err   error
}

func (err *TransmissionError) Error() string {
	return fmt.Sprintf("send failed after %d of %d messages: %s", err.Sent, err.Total, err.Err.Error())
}

func (err *TransmissionError) Unwrap() error {
	return err.Err
}

func (err *TransmissionError) PrintTo(p *Printer) {
	p.WriteString("send failed after ")
	p.Set(Bold)
	fmt.Fprintf(p, "%d of %d", err.Sent, err.Total)
	p.Reset()
	p.WriteString(" messages: ")
	p.WriteString(err.Err.Error())
}
