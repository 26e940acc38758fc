package topic

var defaultConcepts = []string{
	"pattern matching (match/case)",
	"structural pattern matching guards",
	"f-strings formalization (PEP 701)",
	"type parameter syntax (PEP 695)",
	"buffer protocol (PEP 688)",
	"exception groups (PEP 654)",
	"typing.Annotated and metadata",
	"typing.Self and TypeVarTuple",
	"dataclasses and slots",
	"frozen dataclasses and immutability",
	"context managers and contextlib",
	"async context managers and AsyncExitStack",
	"iterators, generators, and yield from",
	"coroutines and async/await",
	"concurrency vs parallelism",
	"subinterpreters in CPython",
	"__slots__ memory optimization",
	"descriptor protocol and properties",
	"metaclasses and class creation",
	"ABC and Protocol (structural typing)",
	"error handling and tracebacks",
	"pathlib vs os.path",
	"datetime and timezone correctness",
	"decimal vs float precision",
	"copy vs deepcopy semantics",
}

// Popular third-party libraries used alongside Python 3.12+.
var defaultLibraries = []string{
	"fastapi", "pydantic", "sqlalchemy", "alembic", "psycopg", "httpx",
	"requests", "uvicorn", "gunicorn", "pytest", "hypothesis", "mypy",
	"pyright", "ruff", "black", "isort", "poetry", "pip-tools", "pipx",
	"numpy", "pandas", "polars", "pyarrow", "xarray", "matplotlib", "plotly",
	"scikit-learn", "lightgbm", "xgboost", "mlflow", "ray", "dask",
	"celery", "redis", "kombu", "aiohttp", "trio", "anyio", "typer",
	"click", "rich", "loguru", "tenacity", "orjson", "uvloop", "asyncpg",
	"motor", "pymongo", "boto3", "azure-identity", "google-cloud-storage",
}

var defaultActions = []string{
	"design", "implement", "refactor", "optimize", "benchmark", "profile",
	"unit test", "property test", "type-check", "document", "package",
	"containerize", "deploy", "secure", "harden", "observe",
}

var defaultDomains = []string{
	"CLI tools", "REST APIs", "web backends", "data pipelines", "ETL jobs",
	"stream processing", "microservices", "batch jobs", "ML training loops",
	"notebooks to production", "event-driven systems", "cron-driven tasks",
	"serverless handlers", "WASM targets", "edge runtimes",
}

var defaultAdvanced = []string{
	"zero-copy buffers", "memoryview techniques", "Cython vs CFFI vs ctypes",
	"multiprocessing vs asyncio for I/O", "threadpools and GIL behavior",
	"structured logging", "backpressure in async code", "cancellation safety",
	"retry policies and idempotency", "schema validation",
	"ORM performance patterns", "vectorized computing", "columnar data (Arrow)",
	"time-series indexing", "TZ-aware datetimes", "parsing and lexing",
}

var defaultTemplates = []string{
	"How to {action} {domain} using {lib} with Python 3.12+",
	"Deep dive: {concept} with {lib} in Python 3.12+",
	"Best practices to {action} {lib} for {domain} (Python 3.12+)",
	"{concept} — pitfalls and patterns in {domain} (Python 3.12+)",
	"Performance guide: {adv} with {lib} on Python 3.12+",
}

var defaultModuleTemplates = []string{
	"Deep dive: {module} standard library module in Python 3.12+",
	"{module}: common mistakes, gotchas, and best practices (Python 3.12+)",
	"How to combine {module} with typing for production code (Python 3.12+)",
	"Testing strategies for {module} code with pytest (Python 3.12+)",
}
