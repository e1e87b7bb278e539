package parse

// Shared raw-text fixtures for detector and parser tests.

const pythonTraceback = `Traceback (most recent call last):
  File "/app/server.py", line 42, in handle_request
    result = process(payload)
  File "/app/worker.py", line 17, in process
    return payload["key"]
KeyError: 'key'`

const pythonTracebackTimestamped = `2024-01-15T10:30:00Z worker crashed
Traceback (most recent call last):
  File "/app/worker.py", line 17, in process
    return payload["key"]
KeyError: 'key'`

const javaTrace = `Exception in thread "main" java.lang.NullPointerException: Cannot invoke "String.length()" because "s" is null
	at com.example.Service.process(Service.java:42)
	at com.example.Main.main(Main.java:10)`

const javaTraceBare = `java.io.IOException: connection reset
	at com.example.net.Client.read(Client.java:88)
	at com.example.net.Client.poll(Client.java:61)`

const jsTrace = `TypeError: Cannot read property 'name' of undefined
    at getUser (/app/src/user.js:25:13)
    at /app/src/index.js:10:3
    at processTicksAndRejections (node:internal/process/task_queues:95:5)`

const goPanic = `panic: runtime error: index out of range [5] with length 3

goroutine 1 [running]:
main.(*Server).handle(0x14000102000, 0x5)
	/app/server.go:42 +0x1c
main.main()
	/app/main.go:15 +0x88`

const genericError = `ConnectionError: could not reach upstream host`

const genericMessageOnly = `something went badly wrong while shutting down`
