package scaffold

// %s is the project name.
const cmakeListsTemplate = `cmake_minimum_required(VERSION 3.18)

# ---- Project ----
project(%s VERSION 0.1.0 LANGUAGES CXX)

set(CMAKE_CXX_STANDARD 20)
set(CMAKE_CXX_STANDARD_REQUIRED ON)
set(CMAKE_EXPORT_COMPILE_COMMANDS ON)  # compile_commands.json for static analysis

# ---- Build Configuration ----
if(NOT CMAKE_BUILD_TYPE)
    set(CMAKE_BUILD_TYPE Debug)
endif()

# ---- Main Executable ----
add_executable(${PROJECT_NAME} src/main.cpp)

# ---- Tests ----
include(CTest)
enable_testing()

include(FetchContent)
FetchContent_Declare(
  googletest
  URL https://github.com/google/googletest/archive/refs/tags/v1.15.0.zip
  DOWNLOAD_EXTRACT_TIMESTAMP true
)
# For Windows: Prevent overriding the parent project's compiler/linker settings
set(gtest_force_shared_crt ON CACHE BOOL "" FORCE)
FetchContent_MakeAvailable(googletest)

file(GLOB_RECURSE TEST_SOURCES "test/*.cpp" "test/*.cxx" "test/*.cc")
add_executable(${PROJECT_NAME}_tests ${TEST_SOURCES})
target_link_libraries(${PROJECT_NAME}_tests gtest_main)
target_include_directories(${PROJECT_NAME}_tests PRIVATE src)

add_test(NAME ${PROJECT_NAME}_tests COMMAND ${PROJECT_NAME}_tests)

# ---- Benchmarks ----
FetchContent_Declare(
  googlebenchmark
  URL https://github.com/google/benchmark/archive/refs/tags/v1.8.3.zip
  DOWNLOAD_EXTRACT_TIMESTAMP true
)
set(BENCHMARK_ENABLE_TESTING OFF CACHE BOOL "" FORCE)
FetchContent_MakeAvailable(googlebenchmark)

file(GLOB_RECURSE BENCH_SOURCES "bench/*.cpp" "bench/*.cxx" "bench/*.cc")
add_executable(${PROJECT_NAME}_bench ${BENCH_SOURCES})
target_link_libraries(${PROJECT_NAME}_bench benchmark::benchmark)
target_include_directories(${PROJECT_NAME}_bench PRIVATE src)

# ---- Installation ----
install(TARGETS ${PROJECT_NAME} DESTINATION bin)
`

const mainTemplate = `#include <iostream>

int main() {
    std::cout << "Hello, world!\n";
    return 0;
}
`

const testTemplate = `#include <gtest/gtest.h>


TEST(SampleTest, BasicAssertion) {
    EXPECT_EQ(2 + 2, 4);
}
`

const benchTemplate = `#include <benchmark/benchmark.h>
#include <vector>
#include <algorithm>

// Example benchmark: sorting a vector
static void BM_VectorSort(benchmark::State& state) {
  for (auto _ : state) {
    state.PauseTiming();
    std::vector<int> data(state.range(0));
    std::generate(data.begin(), data.end(), std::rand);
    state.ResumeTiming();

    std::sort(data.begin(), data.end());
  }
  state.SetComplexityN(state.range(0));
}

BENCHMARK(BM_VectorSort)->Range(8, 8<<10)->Complexity();

BENCHMARK_MAIN();
`

const gitignoreTemplate = `/build/
/.cmake/
/CMakeFiles/
/docs/

/CMakeCache.txt
*.user
*.suo

*.vcxproj*
*.code-workspace
*.idea
Doxyfile.bak
.clang-format.bak

# Keep fargo configuration but ignore user-specific settings
/.fargo/user/
`
